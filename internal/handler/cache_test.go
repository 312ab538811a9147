package handler

import (
	"testing"
	"time"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
)

func TestHashInput(t *testing.T) {
	data := []byte("P0420")

	// Consistent for identical input.
	if HashInput("code", data) != HashInput("code", data) {
		t.Error("same input produced different hashes")
	}

	// Different bytes, different hash.
	if HashInput("code", data) == HashInput("code", []byte("P0300")) {
		t.Error("different inputs produced the same hash")
	}

	// Same bytes, different kind, different hash.
	if HashInput("image", data) == HashInput("video", data) {
		t.Error("kind is not mixed into the hash")
	}
}

func TestResultCacheGetSet(t *testing.T) {
	cache := NewResultCache()
	result := domain.DiagnosisResult{Problem: "misfire", Severity: domain.SeverityLow}

	if _, found := cache.Get("k1"); found {
		t.Error("cache hit on empty cache")
	}

	cache.Set("k1", result)

	got, found := cache.Get("k1")
	if !found {
		t.Fatal("cache miss after Set")
	}
	if got.Problem != "misfire" {
		t.Errorf("cached Problem = %q, want misfire", got.Problem)
	}

	hits, misses, size := cache.Stats()
	if hits != 1 || misses != 1 || size != 1 {
		t.Errorf("Stats = (%d, %d, %d), want (1, 1, 1)", hits, misses, size)
	}
}

func TestResultCacheExpiry(t *testing.T) {
	cache := NewResultCache(WithCacheTTL(10 * time.Millisecond))
	cache.Set("k1", domain.DiagnosisResult{Problem: "misfire"})

	time.Sleep(25 * time.Millisecond)

	if _, found := cache.Get("k1"); found {
		t.Error("cache hit after TTL expiry")
	}
}
