package models

// Envelope mirrors the generateContent response shape so the front end can
// read analyses the same way it reads raw Gemini output.
type Envelope struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// TextEnvelope wraps text as the single part of a single candidate.
func TextEnvelope(text string) Envelope {
	return Envelope{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	}
}

// Text returns the first part of the first candidate.
func (e Envelope) Text() (string, bool) {
	if len(e.Candidates) == 0 || len(e.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return e.Candidates[0].Content.Parts[0].Text, true
}
