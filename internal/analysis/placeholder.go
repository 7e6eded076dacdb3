package analysis

import "github.com/BerylCAtieno/interview-persona/internal/models"

// Placeholder is returned instead of a local analysis when the remote call
// fails and the fallback is configured as "placeholder".
func Placeholder() *models.AnalysisResult {
	return &models.AnalysisResult{
		UserProblems: []models.UserProblem{{
			Problem:  "Unable to analyze - API connection issue",
			Severity: SeverityMedium,
			Context:  "Real-time analysis unavailable, please check network connection",
		}},
		EmotionalInsights: []models.EmotionalInsight{{
			Emotion:   "Neutral",
			Intensity: "1",
			Context:   "Analysis pending",
			Quote:     "Real analysis unavailable",
		}},
		KeyQuotes: []models.KeyQuote{{
			Quote:        "Analysis temporarily unavailable",
			Significance: "API connection needed for real analysis",
			Category:     "System",
		}},
		Persona: models.Persona{
			Name:                 "Analysis Pending",
			Quote:                "Please try again when connection is available",
			Background:           "Real analysis requires API connection",
			Goals:                []string{"Restore connection", "Complete analysis"},
			PainPoints:           []string{"Network issues", "API access"},
			HighLevelMotivations: []string{"Get working analysis", "Complete research"},
		},
	}
}
