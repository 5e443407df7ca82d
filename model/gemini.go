package model

// --- GOOGLE GENERATIVE LANGUAGE API ---

// NoAnalysisFallback is returned when Gemini answers without a usable candidate.
const NoAnalysisFallback = "No analysis available."

type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

// NewGeminiRequest wraps a prompt into the single-turn request shape.
func NewGeminiRequest(prompt string) GeminiRequest {
	return GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
	}
}

// FirstCandidateText extracts the generated text, falling back to
// NoAnalysisFallback when the response carries no candidate parts.
func (r GeminiResponse) FirstCandidateText() string {
	if len(r.Candidates) > 0 && len(r.Candidates[0].Content.Parts) > 0 {
		if text := r.Candidates[0].Content.Parts[0].Text; text != "" {
			return text
		}
	}
	return NoAnalysisFallback
}
