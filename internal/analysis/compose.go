package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/interview-persona/internal/models"
)

// Source records which path produced an analysis.
type Source string

const (
	SourceLocal       Source = "local"
	SourceRemote      Source = "remote"
	SourcePlaceholder Source = "placeholder"
	SourceQuick       Source = "quick"
)

// Analysis is the tagged result handed to the HTTP layer. Payload is a
// *models.AnalysisResult for generated analyses and a map for remote ones,
// which are passed through as the model returned them.
type Analysis struct {
	Source  Source
	Payload any
}

// Format selects how an Analysis is serialized.
type Format string

const (
	FormatFlat     Format = "flat"
	FormatEnvelope Format = "envelope"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatFlat, FormatEnvelope:
		return f, nil
	case "":
		return FormatFlat, nil
	default:
		return "", fmt.Errorf("unknown response format %q", s)
	}
}

// Compose assembles features and persona into the response shape.
func Compose(f models.Features, persona models.Persona) *models.AnalysisResult {
	primary := mainProblem(f)

	result := &models.AnalysisResult{
		UserProblems:      make([]models.UserProblem, 0, len(f.Problems)),
		EmotionalInsights: make([]models.EmotionalInsight, 0, len(f.Emotions)),
		KeyQuotes:         make([]models.KeyQuote, 0, len(f.Quotes)+1),
		Persona:           persona,
	}

	for _, p := range f.Problems {
		result.UserProblems = append(result.UserProblems, models.UserProblem{
			Problem:  p.Description,
			Severity: p.Severity,
			Context:  fmt.Sprintf("Issues identified in %s during user research", p.Area),
		})
	}

	for _, e := range f.Emotions {
		quote := fmt.Sprintf("User expressed %s with the current experience", strings.ToLower(e.Type))
		if len(f.Quotes) > 0 {
			quote = f.Quotes[0]
		}
		result.EmotionalInsights = append(result.EmotionalInsights, models.EmotionalInsight{
			Emotion:   e.Type,
			Intensity: strconv.Itoa(e.Intensity),
			Context:   fmt.Sprintf("Expressed during discussion about %s", primary.Area),
			Quote:     quote,
		})
	}

	for i, q := range f.Quotes {
		significance := "Supporting evidence"
		if i == 0 {
			significance = "Primary user concern"
		}
		result.KeyQuotes = append(result.KeyQuotes, models.KeyQuote{
			Quote:        q,
			Significance: significance,
			Category:     "Pain point",
		})
	}
	if len(f.Quotes) == 0 {
		result.KeyQuotes = append(result.KeyQuotes, models.KeyQuote{
			Quote:        "The current process needs improvement",
			Significance: "Inferred from user feedback",
			Category:     "General feedback",
		})
	}

	return result
}

// Encode serializes the analysis payload, wrapping it in a generateContent
// style envelope when format is FormatEnvelope.
func Encode(a *Analysis, format Format) ([]byte, error) {
	if a == nil || a.Payload == nil {
		return nil, fmt.Errorf("encode analysis: empty payload")
	}

	body, err := json.Marshal(a.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	switch format {
	case FormatFlat, "":
		return body, nil
	case FormatEnvelope:
		wrapped, err := json.Marshal(models.TextEnvelope(string(body)))
		if err != nil {
			return nil, fmt.Errorf("encode envelope: %w", err)
		}
		return wrapped, nil
	default:
		return nil, fmt.Errorf("encode analysis: unknown format %q", format)
	}
}
