package analysis

import (
	"math/rand"

	"github.com/BerylCAtieno/interview-persona/internal/models"
)

const (
	anonymousName   = "Anonymous User"
	defaultLocation = "Urban area"
)

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// globalChooser uses the process-wide math/rand source, which is safe for
// concurrent use.
type globalChooser struct{}

func (globalChooser) Intn(n int) int { return rand.Intn(n) }

// Generator maps extracted features onto the descriptor tables.
type Generator struct {
	chooser Chooser
}

// NewGenerator returns a Generator. A nil chooser uses math/rand.
func NewGenerator(chooser Chooser) *Generator {
	if chooser == nil {
		chooser = globalChooser{}
	}
	return &Generator{chooser: chooser}
}

// Generate builds the persona for f. The archetype name is the only
// non-deterministic field.
func (g *Generator) Generate(f models.Features, original string) models.Persona {
	mainArea := mainProblem(f).Area

	name := anonymousName
	if len(f.Names) > 0 {
		name = f.Names[0]
	}

	age := f.Age
	if age == "" {
		age = ageRange(f.Context)
	}

	return models.Persona{
		Name: g.personaName(mainArea),
		PersonalInfo: &models.PersonalInfo{
			Name:     name,
			Age:      age,
			Location: defaultLocation,
			Role:     role(f.Context),
		},
		Quote:                personaQuote(f),
		Background:           background(f.Context),
		Goals:                goals(mainArea),
		PainPoints:           painPoints(mainArea),
		HighLevelMotivations: motivations(f.Context),
		OriginalContext:      original,
	}
}

func (g *Generator) personaName(area string) string {
	opts := personaNameOptions(area)
	return opts[g.chooser.Intn(len(opts))]
}

func personaQuote(f models.Features) string {
	if len(f.Quotes) > 0 {
		return f.Quotes[0]
	}
	if f.Context == ContextEcommerce {
		return "I need shopping to be simpler"
	}
	return "I need using this product to be simpler"
}

func mainProblem(f models.Features) models.Problem {
	if len(f.Problems) == 0 {
		return defaultProblem
	}
	return f.Problems[0]
}
