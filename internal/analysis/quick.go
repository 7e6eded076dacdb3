package analysis

import (
	"context"
	"regexp"
	"strings"

	"github.com/BerylCAtieno/interview-persona/internal/models"
)

// QuickAnalyzer is the self-contained demo analyzer. It recognizes the
// PlantSnap showcase interview and otherwise produces a generic persona with
// no insight lists.
type QuickAnalyzer struct{}

func NewQuickAnalyzer() *QuickAnalyzer {
	return &QuickAnalyzer{}
}

var showcaseMarkers = []string{"mike jenson", "plantsnap", "plant identification", "biology teacher", "bellevue"}

var quickNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:name)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+),?\s+\d+\s+(?i:years?\s+old)`),
	regexp.MustCompile(`(?i:interviewee)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

type quickProfile struct {
	context     string
	personaName string
	role        string
}

var quickProfiles = []struct {
	trigger trigger
	profile quickProfile
}{
	{newTrigger("shop", "buy", "purchase"), quickProfile{ContextEcommerce, "Efficient Shopper", "Online shopper"}},
	{newTrigger("app", "mobile"), quickProfile{"mobile", "Mobile User", "Mobile-first user"}},
	{newTrigger("website", "site"), quickProfile{ContextWebsite, "Information Seeker", "Information seeker"}},
}

var defaultQuickProfile = quickProfile{ContextDigitalProduct, "Digital User", "Product user"}

func (q *QuickAnalyzer) Analyze(_ context.Context, transcript string) (*Analysis, error) {
	return &Analysis{Source: SourceQuick, Payload: q.Run(transcript)}, nil
}

func (q *QuickAnalyzer) Run(transcript string) *models.AnalysisResult {
	lower := strings.ToLower(transcript)
	for _, marker := range showcaseMarkers {
		if strings.Contains(lower, marker) {
			return showcasePersona()
		}
	}

	profile := defaultQuickProfile
	for _, p := range quickProfiles {
		if p.trigger.match(lower) {
			profile = p.profile
			break
		}
	}

	quote := "I want using this to be easier"
	if profile.context == ContextEcommerce {
		quote = "I want shopping to be easier"
	}
	if span, ok := firstQuotedSpan(transcript); ok {
		quote = span
	}

	return &models.AnalysisResult{
		UserProblems:      []models.UserProblem{},
		EmotionalInsights: []models.EmotionalInsight{},
		KeyQuotes:         []models.KeyQuote{},
		Persona: models.Persona{
			Name: profile.personaName,
			PersonalInfo: &models.PersonalInfo{
				Name:     quickName(transcript),
				Age:      "25-40",
				Location: defaultLocation,
				Role:     profile.role,
			},
			Quote:      quote,
			Background: "User who regularly interacts with digital products and expects efficient, user-friendly experiences in their daily workflow.",
			Goals: []string{
				"Complete tasks efficiently and effectively",
				"Have smooth and intuitive user experience",
				"Achieve desired outcomes quickly",
			},
			PainPoints: []string{
				"Complex interfaces and confusing navigation",
				"Slow performance and loading times",
				"Poor user experience design",
			},
			HighLevelMotivations: []string{
				"Achieve goals efficiently and save time",
				"Maintain productivity and avoid frustration",
				"Have reliable and smooth experience",
			},
		},
	}
}

func quickName(transcript string) string {
	for _, re := range quickNamePatterns {
		if m := re.FindStringSubmatch(transcript); m != nil {
			return m[1]
		}
	}
	return "User"
}

func firstQuotedSpan(text string) (string, bool) {
	if spans := singleQuotedSpans(text); len(spans) > 0 {
		return spans[0], true
	}
	if m := doubleQuoted.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

func showcasePersona() *models.AnalysisResult {
	return &models.AnalysisResult{
		UserProblems:      []models.UserProblem{},
		EmotionalInsights: []models.EmotionalInsight{},
		KeyQuotes:         []models.KeyQuote{},
		Persona: models.Persona{
			Name: "Nature-loving Educator",
			PersonalInfo: &models.PersonalInfo{
				Name:     "Mike Jenson",
				Age:      "28",
				Location: "Bellevue",
				Role:     "Middle school biology teacher",
			},
			Quote:      "I wish the app were more professional, ideally it would offer accurate results, richer content, and a way to connect with a knowledgeable community",
			Background: "Biology teacher who loves nature photography and plant identification. Uses apps to enhance teaching and personal exploration of plants and nature.",
			Goals: []string{
				"Get accurate plant identification under any conditions",
				"Connect with plant experts and community members",
				"Access comprehensive plant information for teaching",
			},
			PainPoints: []string{
				"Low accuracy of plant identification results",
				"No community features to verify findings",
				"Important features locked behind paywall subscription",
			},
			HighLevelMotivations: []string{
				"Deep love for plants and nature exploration",
				"Strong desire for community connection and learning",
				"Professional need for reliable educational resources",
			},
		},
	}
}
