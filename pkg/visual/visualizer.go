package visual

import "context"

// Generator produces the visual schema for a query.
type Generator interface {
	Generate(ctx context.Context, query string) (VisualResponse, error)
}

// Analysis exposes the intermediate steps behind a schema.
type Analysis struct {
	ChartType ChartType      `json:"chart_type"`
	Concepts  []string       `json:"concepts"`
	Schema    VisualResponse `json:"schema"`
}

// Visualizer is the heuristic Generator: classify, extract, then build.
type Visualizer struct {
	rng     RandomSource
	pairing ComparisonPairing
}

var _ Generator = (*Visualizer)(nil)

type Option func(*Visualizer)

// WithRandomSource overrides the concept-map randomness.
func WithRandomSource(rng RandomSource) Option {
	return func(v *Visualizer) {
		v.rng = rng
	}
}

func WithComparisonPairing(pairing ComparisonPairing) Option {
	return func(v *Visualizer) {
		v.pairing = pairing
	}
}

func NewVisualizer(opts ...Option) *Visualizer {
	v := &Visualizer{
		rng:     SystemSource(),
		pairing: ComparisonLegacy,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Analyze runs the classifier and extractor and builds the matching schema.
func (v *Visualizer) Analyze(query string) Analysis {
	chartType := DetermineChartType(query)
	concepts := ExtractConcepts(query)

	var schema VisualResponse
	switch chartType {
	case ChartFlowchart:
		schema = GenerateFlowchart(concepts)
	case ChartMindMap:
		schema = GenerateMindMap(concepts)
	case ChartComparison:
		schema = GenerateComparison(concepts, v.pairing)
	default:
		schema = GenerateConceptMap(concepts, v.rng)
	}

	return Analysis{ChartType: chartType, Concepts: concepts, Schema: schema}
}

// Generate never fails; the error return keeps it interchangeable with other generators.
func (v *Visualizer) Generate(_ context.Context, query string) (VisualResponse, error) {
	return v.Analyze(query).Schema, nil
}
