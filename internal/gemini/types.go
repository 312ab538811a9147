package gemini

// Wire types for the generateContent request and response.

// generateRequest is the body of a generateContent call.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

// content is a single turn of the conversation.
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// part is either a text fragment or an inline media attachment.
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

// inlineData carries base64-encoded media bytes with their MIME type.
type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generationConfig contains optional generation parameters.
type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// generateResponse is the body of a successful generateContent reply.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// candidate is a single generated answer.
type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// errorResponse is the Gemini error envelope.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains the error fields the classifier keys off.
type errorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
