package analysis

// Descriptor tables for persona generation. Every lookup falls back to a
// default row, so unknown keys never produce an empty persona.

var personaNames = map[string][]string{
	AreaCheckout:    {"Efficient Shopper", "Goal-Oriented Buyer", "Time-Conscious Customer"},
	AreaNavigation:  {"Information Seeker", "Task-Focused User", "Efficiency-Driven Navigator"},
	AreaPerformance: {"Performance-Sensitive User", "Impatient Digital Native", "Speed-Expecting User"},
	AreaDesign:      {"Design-Conscious User", "UX-Aware Professional", "Interface Critic"},
	AreaUsability:   {"Frustrated User", "Simplicity Seeker", "User Experience Advocate"},
}

var ageRanges = map[string]string{
	ContextEcommerce:      "25-45",
	ContextMobileApp:      "22-40",
	ContextWebsite:        "28-50",
	ContextSoftware:       "25-45",
	ContextDigitalProduct: "25-45",
}

const defaultAgeRange = "25-45"

var roles = map[string]string{
	ContextEcommerce:      "Online shopper / Working professional",
	ContextMobileApp:      "Mobile-first user / Digital native",
	ContextWebsite:        "Information seeker / Knowledge worker",
	ContextSoftware:       "Software user / Professional",
	ContextDigitalProduct: "Product user / Professional",
}

const defaultRole = "Digital product user"

var backgrounds = map[string]string{
	ContextEcommerce:      "Regular online shopper who values efficiency and seamless purchasing experiences. Uses digital platforms frequently for both personal and professional needs.",
	ContextMobileApp:      "Mobile-first user who relies on apps for daily tasks. Expects intuitive design and quick access to features.",
	ContextWebsite:        "Web user who visits sites to accomplish specific goals efficiently. Values clear information architecture and task completion.",
	ContextSoftware:       "Professional who uses software tools regularly and expects reliable, user-friendly interfaces in daily workflow.",
	ContextDigitalProduct: "User who interacts with digital products regularly and expects reliability. Seeks user-friendly interfaces in daily workflow.",
}

var goalSets = map[string][]string{
	AreaNavigation:  {"Find information quickly and accurately", "Navigate intuitively without confusion", "Complete tasks without obstacles"},
	AreaPerformance: {"Access content instantly without delays", "Have responsive and smooth interactions", "Maintain productive workflow"},
	AreaDesign:      {"Use well-designed and intuitive interfaces", "Have visually pleasing and functional experience", "Accomplish goals with minimal effort"},
	AreaUsability:   {"Use product effectively and efficiently", "Accomplish goals easily and quickly", "Have pleasant user experience"},
}

var painPointSets = map[string][]string{
	AreaCheckout:    {"Complex checkout process with too many steps", "Confusing payment options and forms", "Lack of progress indicators"},
	AreaNavigation:  {"Difficult navigation and confusing menu structure", "Poor search functionality and results", "Unclear information architecture"},
	AreaPerformance: {"Slow loading times and poor performance", "Unresponsive interface and lag issues", "Frequent crashes or errors"},
	AreaDesign:      {"Poor visual design and layout", "Inconsistent interface elements", "Cluttered and overwhelming screens"},
	AreaUsability:   {"Poor user experience and interface design", "Confusing workflows and unclear instructions", "Lack of helpful feedback"},
}

var motivationSets = map[string][]string{
	ContextEcommerce:      {"Save time during shopping and purchases", "Have confidence in buying decisions", "Avoid frustration and cart abandonment"},
	ContextMobileApp:      {"Accomplish tasks efficiently on mobile devices", "Have reliable and responsive mobile experience", "Minimize effort and maximize convenience"},
	ContextWebsite:        {"Find information quickly and accurately", "Complete objectives smoothly without obstacles", "Have trustworthy and professional experience"},
	ContextSoftware:       {"Use tools effectively to be productive", "Achieve professional goals efficiently", "Have reliable software that supports workflow"},
	ContextDigitalProduct: {"Use technology effectively and efficiently", "Achieve desired outcomes and goals", "Maintain productivity and avoid delays"},
}

func personaNameOptions(area string) []string {
	if opts, ok := personaNames[area]; ok {
		return opts
	}
	return personaNames[AreaUsability]
}

func ageRange(context string) string {
	if r, ok := ageRanges[context]; ok {
		return r
	}
	return defaultAgeRange
}

func role(context string) string {
	if r, ok := roles[context]; ok {
		return r
	}
	return defaultRole
}

func background(context string) string {
	if b, ok := backgrounds[context]; ok {
		return b
	}
	return backgrounds[ContextDigitalProduct]
}

func goals(area string) []string {
	return lookupSet(goalSets, area, AreaUsability)
}

func painPoints(area string) []string {
	return lookupSet(painPointSets, area, AreaUsability)
}

func motivations(context string) []string {
	return lookupSet(motivationSets, context, ContextDigitalProduct)
}

// lookupSet copies the row so callers can't mutate the shared table.
func lookupSet(table map[string][]string, key, fallback string) []string {
	row, ok := table[key]
	if !ok {
		row = table[fallback]
	}
	return append([]string(nil), row...)
}
