package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newMockAPI returns a test server that records the last request body and
// answers with the given handler.
func newMockAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func TestGenerateContentTextOnly(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := newMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("mock failed to decode request: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]interface{}{{"text": "reply text"}},
					},
					"finishReason": "STOP",
				},
			},
		})
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithModel("gemini-1.5-flash"))

	text, err := client.GenerateContent(context.Background(), "what is P0420?", nil)
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}

	if text != "reply text" {
		t.Errorf("text = %q, want %q", text, "reply text")
	}
	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("path = %q, want /models/gemini-1.5-flash:generateContent", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q, want test-key", gotKey)
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 {
		t.Fatalf("request contents = %+v, want one content with one part", gotReq.Contents)
	}
	if gotReq.Contents[0].Parts[0].Text != "what is P0420?" {
		t.Errorf("prompt = %q, want the original prompt", gotReq.Contents[0].Parts[0].Text)
	}
}

func TestGenerateContentInlineMedia(t *testing.T) {
	var gotReq generateRequest

	srv := newMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]interface{}{{"text": "ok"}}}},
			},
		})
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	raw := []byte{0xFF, 0xD8, 0xFF, 0x01, 0x02}
	_, err := client.GenerateContent(context.Background(), "inspect this", &Blob{
		MIMEType: "image/jpeg",
		Data:     raw,
	})
	if err != nil {
		t.Fatalf("GenerateContent returned error: %v", err)
	}

	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 2 {
		t.Fatalf("request parts = %+v, want text part plus inline part", gotReq.Contents)
	}

	inline := gotReq.Contents[0].Parts[1].InlineData
	if inline == nil {
		t.Fatal("second part has no inline_data")
	}
	if inline.MIMEType != "image/jpeg" {
		t.Errorf("inline mime_type = %q, want image/jpeg", inline.MIMEType)
	}
	if inline.Data != base64.StdEncoding.EncodeToString(raw) {
		t.Error("inline data is not the base64 of the payload bytes")
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := newMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    429,
				"message": "Resource has been exhausted (e.g. check quota).",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	if err == nil {
		t.Fatal("GenerateContent succeeded, want API error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Status != "RESOURCE_EXHAUSTED" {
		t.Errorf("Status = %q, want RESOURCE_EXHAUSTED", apiErr.Status)
	}
	if !strings.Contains(apiErr.Message, "exhausted") {
		t.Errorf("Message = %q, want the envelope message", apiErr.Message)
	}
}

func TestGenerateContentNonJSONError(t *testing.T) {
	srv := newMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "upstream exploded" {
		t.Errorf("APIError = %+v, want raw body preserved", apiErr)
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	srv := newMockAPI(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.GenerateContent(context.Background(), "prompt", nil)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}
