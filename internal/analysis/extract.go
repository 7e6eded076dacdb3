package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/BerylCAtieno/interview-persona/internal/models"
)

// Context categories.
const (
	ContextEcommerce      = "ecommerce"
	ContextMobileApp      = "mobile_app"
	ContextWebsite        = "website"
	ContextSoftware       = "software"
	ContextDigitalProduct = "digital_product"
)

// Problem areas.
const (
	AreaCheckout    = "checkout"
	AreaNavigation  = "navigation"
	AreaPerformance = "performance"
	AreaDesign      = "design"
	AreaUsability   = "usability"
)

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
)

const (
	minQuoteRunes    = 10
	maxQuoteWords    = 25
	minSentenceRunes = 20
	maxSentenceRunes = 200
	minNameRunes     = 2
	maxNameRunes     = 15
)

// trigger matches lower-cased text by plain substring, so "ui" also fires
// inside "quite" and "app" inside "happy".
type trigger []string

func newTrigger(substrings ...string) trigger {
	return trigger(substrings)
}

func (t trigger) match(lower string) bool {
	for _, s := range t {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

type emotionRule struct {
	trigger trigger
	emotion models.Emotion
}

var emotionRules = []emotionRule{
	{newTrigger("frustrat", "annoyed"), models.Emotion{Type: "Frustration", Intensity: 4}},
	{newTrigger("confus"), models.Emotion{Type: "Confusion", Intensity: 3}},
	{newTrigger("stress", "overwhelmed"), models.Emotion{Type: "Stress", Intensity: 4}},
	{newTrigger("disappointed"), models.Emotion{Type: "Disappointment", Intensity: 3}},
	{newTrigger("angry"), models.Emotion{Type: "Anger", Intensity: 5}},
	{newTrigger("happy", "satisfied"), models.Emotion{Type: "Satisfaction", Intensity: 2}},
	{newTrigger("excited"), models.Emotion{Type: "Excitement", Intensity: 3}},
	{newTrigger("worried", "concern"), models.Emotion{Type: "Worry", Intensity: 3}},
}

var neutralEmotion = models.Emotion{Type: "Neutral", Intensity: 2}

type problemRule struct {
	area        string
	description string
	trigger     trigger
	// escalate raises severity to High when it also matches.
	escalate *trigger
}

func escalation(substrings ...string) *trigger {
	t := newTrigger(substrings...)
	return &t
}

var problemRules = []problemRule{
	{
		area:        AreaCheckout,
		description: "Checkout process complexity",
		trigger:     newTrigger("checkout", "purchase", "payment", "buy"),
		escalate:    escalation("frustrat", "abandon"),
	},
	{
		area:        AreaNavigation,
		description: "Navigation and findability issues",
		trigger:     newTrigger("navigation", "find", "menu", "search"),
		escalate:    escalation("never find", "lost"),
	},
	{
		area:        AreaPerformance,
		description: "Performance and loading issues",
		trigger:     newTrigger("slow", "load", "performance", "lag"),
		escalate:    escalation("very slow", "crash"),
	},
	{
		area:        AreaDesign,
		description: "User interface and design issues",
		trigger:     newTrigger("design", "interface", "ui", "ux"),
	},
}

var defaultProblem = models.Problem{
	Area:        AreaUsability,
	Severity:    SeverityMedium,
	Description: "General usability concerns",
}

type contextRule struct {
	context string
	trigger trigger
}

// Order matters: the first matching rule wins.
var contextRules = []contextRule{
	{ContextEcommerce, newTrigger("shop", "buy", "purchase", "cart", "product")},
	{ContextMobileApp, newTrigger("app", "mobile")},
	{ContextWebsite, newTrigger("website", "site", "web")},
	{ContextSoftware, newTrigger("software", "tool", "platform")},
}

var (
	capitalizedName = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)
	introPatterns   = []*regexp.Regexp{
		regexp.MustCompile(`\b(?i:interviewee|participant|user)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`\b(?i:my name is|name|called|i'm)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`\b([A-Z][a-z]+)\s+(?i:said|mentioned|expressed)\b`),
	}
	cjkName         = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,4}`)
	excludePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)User\s+\w+`),
		regexp.MustCompile(`(?i)\w+\s+Interview`),
		regexp.MustCompile(`(?i)Interview\s+\w+`),
		regexp.MustCompile(`(?i)\w+\s+User`),
	}
	ageRegex      = regexp.MustCompile(`(?i)(\d{1,2})\s*years\s*old`)
	doubleQuoted  = regexp.MustCompile(`["“]([^"“”]+)["”]`)
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
)

var excludedNames = toSet(
	"Interview", "User", "During", "The", "I", "It", "And", "But",
	"When", "Where", "What", "How", "Why", "This", "That", "With", "Without",
	"They", "We", "You", "He", "She", "His", "Her", "My", "Our", "Their",
	"Mobile", "App", "Website", "Design", "Interface", "UX", "UI", "Product",
	"Plant", "ID", "Then", "Just", "Super", "Really", "Time",
	"Background", "Goals", "Pain", "Points", "Motivations", "Classification",
	"Hello", "Hi", "Yes", "No", "So", "Well", "Also", "Yeah", "Okay", "Q", "A",
)

var excludedCJK = toSet("用户", "采访", "网站", "应用", "界面", "设计", "产品", "功能", "体验")

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Extract runs every extractor over the transcript. It never fails.
func Extract(text string) models.Features {
	lower := strings.ToLower(text)
	return models.Features{
		Names:    ExtractNames(text),
		Emotions: DetectEmotions(lower),
		Problems: DetectProblems(lower),
		Context:  DetectContext(lower),
		Quotes:   ExtractQuotes(text),
		Age:      ExtractAge(text),
	}
}

// ExtractNames returns candidate person names in order of confidence:
// explicit introductions first, then capitalized word runs, then CJK runs.
func ExtractNames(text string) []string {
	var candidates []string

	for _, re := range introPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if name, ok := cleanName(m[1]); ok {
				candidates = append(candidates, name)
			}
		}
	}

	for _, m := range capitalizedName.FindAllString(text, -1) {
		if name, ok := cleanName(m); ok {
			candidates = append(candidates, name)
		}
	}

	for _, m := range cjkName.FindAllString(text, -1) {
		if _, skip := excludedCJK[m]; !skip {
			candidates = append(candidates, m)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		n := len([]rune(name))
		if n < minNameRunes || n > maxNameRunes {
			continue
		}
		if strings.Contains(name, "User") || strings.Contains(name, "Interview") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// cleanName drops leading stop words ("When Mike" -> "Mike") and rejects
// candidates that are entirely stop words or match an exclusion pattern.
func cleanName(candidate string) (string, bool) {
	words := strings.Fields(candidate)
	for len(words) > 0 {
		if _, stop := excludedNames[words[0]]; !stop {
			break
		}
		words = words[1:]
	}
	if len(words) == 0 {
		return "", false
	}
	for _, w := range words {
		if _, stop := excludedNames[w]; stop {
			words = words[:1]
			break
		}
	}

	name := strings.Join(words, " ")
	for _, re := range excludePatterns {
		if re.MatchString(name) {
			return "", false
		}
	}
	if _, stop := excludedNames[name]; stop {
		return "", false
	}
	return name, true
}

// DetectEmotions expects lower-cased text. Rules are not exclusive.
func DetectEmotions(lower string) []models.Emotion {
	var emotions []models.Emotion
	for _, rule := range emotionRules {
		if rule.trigger.match(lower) {
			emotions = append(emotions, rule.emotion)
		}
	}
	if len(emotions) == 0 {
		return []models.Emotion{neutralEmotion}
	}
	return emotions
}

// DetectProblems expects lower-cased text. The first entry is the main area.
func DetectProblems(lower string) []models.Problem {
	var problems []models.Problem
	for _, rule := range problemRules {
		if !rule.trigger.match(lower) {
			continue
		}
		severity := SeverityMedium
		if rule.escalate != nil && rule.escalate.match(lower) {
			severity = SeverityHigh
		}
		problems = append(problems, models.Problem{
			Area:        rule.area,
			Severity:    severity,
			Description: rule.description,
		})
	}
	if len(problems) == 0 {
		return []models.Problem{defaultProblem}
	}
	return problems
}

// DetectContext expects lower-cased text.
func DetectContext(lower string) string {
	for _, rule := range contextRules {
		if rule.trigger.match(lower) {
			return rule.context
		}
	}
	return ContextDigitalProduct
}

// ExtractQuotes prefers single-quoted spans, then double-quoted spans, then
// sentences containing "i ".
func ExtractQuotes(text string) []string {
	spans := singleQuotedSpans(text)
	if len(spans) == 0 {
		for _, m := range doubleQuoted.FindAllStringSubmatch(text, -1) {
			spans = append(spans, m[1])
		}
	}

	var quotes []string
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if len([]rune(span)) > minQuoteRunes {
			quotes = append(quotes, limitWords(span))
		}
	}
	if len(quotes) > 0 {
		return quotes
	}

	for _, sentence := range sentenceBreak.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		n := len([]rune(sentence))
		if n < minSentenceRunes || n >= maxSentenceRunes {
			continue
		}
		// Case-sensitive: only a lower-case "i " counts.
		if strings.Contains(sentence, "i ") {
			quotes = append(quotes, limitWords(sentence))
		}
	}
	return quotes
}

// singleQuotedSpans finds '...' spans. An apostrophe between two letters or
// digits (it's, don't) neither opens nor closes a span.
func singleQuotedSpans(text string) []string {
	runes := []rune(text)
	var spans []string
	start := -1
	for i, r := range runes {
		if r != '\'' {
			continue
		}
		prevWord := i > 0 && isWordRune(runes[i-1])
		nextWord := i+1 < len(runes) && isWordRune(runes[i+1])
		switch {
		case start < 0 && !prevWord && nextWord:
			start = i + 1
		case start >= 0 && !nextWord:
			if i > start {
				spans = append(spans, string(runes[start:i]))
			}
			start = -1
		}
	}
	return spans
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func limitWords(s string) string {
	words := strings.Fields(s)
	if len(words) > maxQuoteWords {
		return strings.Join(words[:maxQuoteWords], " ") + "..."
	}
	return s
}

// ExtractAge returns the N of an "N years old" phrase, or "".
func ExtractAge(text string) string {
	m := ageRegex.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
