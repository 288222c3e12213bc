// internal/ai/gemini/models.go
package gemini

// GenerateRequest is the native Gemini GenerateContent API request.
type GenerateRequest struct {
	Contents          []Content          `json:"contents"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
}

// Content is a content block in the request.
type Content struct {
	Role  string `json:"role"` // "user" or "model"
	Parts []Part `json:"parts"`
}

// Part is a part of content.
type Part struct {
	Text string `json:"text"`
}

// SystemInstruction carries system-level instructions.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig controls generation. ResponseMIMEType and
// ResponseSchema constrain the model to structured JSON output.
type GenerationConfig struct {
	Temperature      float32     `json:"temperature,omitempty"`
	MaxOutputTokens  int         `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

// GenerateResponse is the response from the Gemini API.
type GenerateResponse struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	ModelVersion  string        `json:"modelVersion"`
}

// Candidate is a response candidate.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata carries token usage information.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
