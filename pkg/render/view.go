// Package render turns a visual schema into the two views offered by the
// client: a diagram and a table.
package render

import (
	"fmt"

	"neoyngpt-be/pkg/visual"
)

// Column headings fixed by the client layout
const (
	CommonFactorsTitle = "Common Factors"
	AspectHeader       = "Aspect"
)

// Diagram is the two-sided layout: left items under LeftTitle, the connection
// labels under CenterTitle, and right items under RightTitle. Edges lists
// every connection for non-comparison charts.
type Diagram struct {
	LeftTitle   string   `json:"left_title"`
	Left        []string `json:"left"`
	CenterTitle string   `json:"center_title"`
	Connections []string `json:"connections"`
	RightTitle  string   `json:"right_title"`
	Right       []string `json:"right"`
	Nodes       []string `json:"nodes"`
	Edges       []string `json:"edges"`
}

// Table has an "Aspect" column plus the first two node labels, and one
// [label, "Yes", "No"] row per left node.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Views bundles both renderings so the client can toggle without a round trip.
type Views struct {
	Diagram Diagram `json:"diagram"`
	Table   Table   `json:"table"`
}

// Render returns nil when there is no visual content to show.
func Render(v *visual.VisualResponse) *Views {
	if v == nil {
		return nil
	}
	return &Views{
		Diagram: RenderDiagram(*v),
		Table:   RenderTable(*v),
	}
}

func RenderDiagram(v visual.VisualResponse) Diagram {
	d := Diagram{
		LeftTitle:   labelAt(v.Nodes, 0),
		CenterTitle: CommonFactorsTitle,
		RightTitle:  labelAt(v.Nodes, 1),
		Left:        make([]string, 0),
		Connections: make([]string, 0, len(v.Connections)),
		Right:       make([]string, 0),
		Nodes:       make([]string, 0, len(v.Nodes)),
		Edges:       make([]string, 0, len(v.Connections)),
	}

	labels := make(map[string]string, len(v.Nodes))
	for _, n := range v.Nodes {
		labels[n.Id] = n.Label
		d.Nodes = append(d.Nodes, n.Label)
		switch n.Type {
		case visual.NodeTypeLeft:
			d.Left = append(d.Left, n.Label)
		case visual.NodeTypeRight:
			d.Right = append(d.Right, n.Label)
		}
	}

	for _, c := range v.Connections {
		d.Connections = append(d.Connections, c.Label)
		d.Edges = append(d.Edges, edgeLine(c, labels))
	}

	return d
}

// edgeLine falls back to the raw id for endpoints that are not in the schema.
func edgeLine(c visual.Connection, labels map[string]string) string {
	from, ok := labels[c.From]
	if !ok {
		from = c.From
	}
	to, ok := labels[c.To]
	if !ok {
		to = c.To
	}
	if c.Label != "" {
		return fmt.Sprintf("%s %s %s", from, c.Label, to)
	}
	return fmt.Sprintf("%s → %s", from, to)
}

func RenderTable(v visual.VisualResponse) Table {
	t := Table{
		Header: []string{AspectHeader, labelAt(v.Nodes, 0), labelAt(v.Nodes, 1)},
		Rows:   make([][]string, 0),
	}
	for _, n := range v.Nodes {
		if n.Type == visual.NodeTypeLeft {
			t.Rows = append(t.Rows, []string{n.Label, "Yes", "No"})
		}
	}
	return t
}

func labelAt(nodes []visual.Node, i int) string {
	if i < len(nodes) {
		return nodes[i].Label
	}
	return ""
}
