package visual

// ChartType selects the topology used to turn concepts into a graph.
type ChartType string

const (
	ChartFlowchart  ChartType = "flowchart"
	ChartMindMap    ChartType = "mindmap"
	ChartComparison ChartType = "comparison"
	ChartConcept    ChartType = "concept"
)

// Node types
const (
	NodeTypeProcess = "process"
	NodeTypeMain    = "main"
	NodeTypeBranch  = "branch"
	NodeTypeLeft    = "left"
	NodeTypeRight   = "right"
	NodeTypeConcept = "concept"
)

type Node struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type Connection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// VisualResponse is the node-and-connection schema for one query.
// It is built fresh per query and not mutated afterwards.
type VisualResponse struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

func newVisualResponse(nodes []Node, connections []Connection) VisualResponse {
	if nodes == nil {
		nodes = make([]Node, 0)
	}
	if connections == nil {
		connections = make([]Connection, 0)
	}
	return VisualResponse{Nodes: nodes, Connections: connections}
}

// HasNode reports whether a node with the given id exists.
func (v VisualResponse) HasNode(id string) bool {
	for _, n := range v.Nodes {
		if n.Id == id {
			return true
		}
	}
	return false
}

// DanglingConnections returns connections whose endpoints are not nodes of v.
func (v VisualResponse) DanglingConnections() []Connection {
	dangling := make([]Connection, 0)
	for _, c := range v.Connections {
		if !v.HasNode(c.From) || !v.HasNode(c.To) {
			dangling = append(dangling, c)
		}
	}
	return dangling
}
