package visual

import "fmt"

// Connection labels
const (
	LabelFlowArrow = "→"
	LabelVersus    = "vs"
)

// ComparisonPairing selects how comparison connections are built.
type ComparisonPairing string

const (
	// ComparisonLegacy walks the right half of the combined node list and
	// pairs each entry with left-{k}, k counted from 0. With unequal halves
	// this references left nodes that do not exist.
	ComparisonLegacy ComparisonPairing = "legacy"

	// ComparisonPaired connects left-i to right-i for every i present on both sides.
	ComparisonPaired ComparisonPairing = "paired"
)

// ParseComparisonPairing falls back to ComparisonLegacy for unknown values.
func ParseComparisonPairing(s string) ComparisonPairing {
	if ComparisonPairing(s) == ComparisonPaired {
		return ComparisonPaired
	}
	return ComparisonLegacy
}

// GenerateFlowchart chains one process node per concept.
func GenerateFlowchart(concepts []string) VisualResponse {
	nodes := make([]Node, 0, len(concepts))
	for i, concept := range concepts {
		nodes = append(nodes, Node{Id: fmt.Sprintf("node-%d", i), Label: concept, Type: NodeTypeProcess})
	}

	connections := make([]Connection, 0)
	for i := 0; i+1 < len(concepts); i++ {
		connections = append(connections, Connection{
			From:  fmt.Sprintf("node-%d", i),
			To:    fmt.Sprintf("node-%d", i+1),
			Label: LabelFlowArrow,
		})
	}

	return newVisualResponse(nodes, connections)
}

// GenerateMindMap puts the first concept at the center and branches the rest off it.
func GenerateMindMap(concepts []string) VisualResponse {
	if len(concepts) == 0 {
		return newVisualResponse(nil, nil)
	}

	nodes := []Node{{Id: "center", Label: concepts[0], Type: NodeTypeMain}}
	connections := make([]Connection, 0, len(concepts)-1)
	for i, concept := range concepts[1:] {
		id := fmt.Sprintf("branch-%d", i)
		nodes = append(nodes, Node{Id: id, Label: concept, Type: NodeTypeBranch})
		connections = append(connections, Connection{From: "center", To: id})
	}

	return newVisualResponse(nodes, connections)
}

// GenerateComparison splits concepts at n/2 into a left and a right side.
func GenerateComparison(concepts []string, pairing ComparisonPairing) VisualResponse {
	mid := len(concepts) / 2
	left, right := concepts[:mid], concepts[mid:]

	nodes := make([]Node, 0, len(concepts))
	for i, concept := range left {
		nodes = append(nodes, Node{Id: fmt.Sprintf("left-%d", i), Label: concept, Type: NodeTypeLeft})
	}
	for i, concept := range right {
		nodes = append(nodes, Node{Id: fmt.Sprintf("right-%d", i), Label: concept, Type: NodeTypeRight})
	}

	connections := make([]Connection, 0)
	switch pairing {
	case ComparisonPaired:
		for i := 0; i < min(len(left), len(right)); i++ {
			connections = append(connections, Connection{
				From:  fmt.Sprintf("left-%d", i),
				To:    fmt.Sprintf("right-%d", i),
				Label: LabelVersus,
			})
		}
	default:
		for k, node := range nodes[mid:] {
			connections = append(connections, Connection{
				From:  fmt.Sprintf("left-%d", k),
				To:    node.Id,
				Label: LabelVersus,
			})
		}
	}

	return newVisualResponse(nodes, connections)
}

// GenerateConceptMap links each unordered pair of concepts with probability 1/2.
func GenerateConceptMap(concepts []string, rng RandomSource) VisualResponse {
	if rng == nil {
		rng = SystemSource()
	}

	nodes := make([]Node, 0, len(concepts))
	for i, concept := range concepts {
		nodes = append(nodes, Node{Id: fmt.Sprintf("concept-%d", i), Label: concept, Type: NodeTypeConcept})
	}

	connections := make([]Connection, 0)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if rng.Float64() > 0.5 {
				connections = append(connections, Connection{From: nodes[i].Id, To: nodes[j].Id})
			}
		}
	}

	return newVisualResponse(nodes, connections)
}
