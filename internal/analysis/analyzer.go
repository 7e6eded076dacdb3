package analysis

import (
	"context"

	"github.com/BerylCAtieno/interview-persona/internal/models"
)

// Analyzer is the local heuristic pipeline: extract, generate, compose.
type Analyzer struct {
	generator *Generator
}

func NewAnalyzer(chooser Chooser) *Analyzer {
	return &Analyzer{generator: NewGenerator(chooser)}
}

// Analyze never fails; the error is there so Analyzer can stand in for the
// remote gateway.
func (a *Analyzer) Analyze(_ context.Context, transcript string) (*Analysis, error) {
	return &Analysis{Source: SourceLocal, Payload: a.Run(transcript)}, nil
}

// Run executes the pipeline synchronously.
func (a *Analyzer) Run(transcript string) *models.AnalysisResult {
	features := Extract(transcript)
	persona := a.generator.Generate(features, transcript)
	return Compose(features, persona)
}
