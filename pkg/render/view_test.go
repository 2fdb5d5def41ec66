package render

import (
	"testing"

	"neoyngpt-be/pkg/visual"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNil(t *testing.T) {
	assert.Nil(t, Render(nil))
}

func TestRenderComparison(t *testing.T) {
	schema := visual.GenerateComparison([]string{"cats", "dogs", "birds", "fish"}, visual.ComparisonLegacy)

	views := Render(&schema)
	require.NotNil(t, views)

	assert.Equal(t, []string{"cats", "dogs"}, views.Diagram.Left)
	assert.Equal(t, []string{"birds", "fish"}, views.Diagram.Right)
	assert.Equal(t, []string{"vs", "vs"}, views.Diagram.Connections)
	assert.Equal(t, []string{"cats vs birds", "dogs vs fish"}, views.Diagram.Edges)

	assert.Equal(t, "cats", views.Diagram.LeftTitle)
	assert.Equal(t, "dogs", views.Diagram.RightTitle)
	assert.Equal(t, "Common Factors", views.Diagram.CenterTitle)

	assert.Equal(t, []string{"Aspect", "cats", "dogs"}, views.Table.Header)
	assert.Equal(t, [][]string{{"cats", "Yes", "No"}, {"dogs", "Yes", "No"}}, views.Table.Rows)
	for _, row := range views.Table.Rows {
		assert.Len(t, row, len(views.Table.Header))
	}
}

func TestRenderDanglingEdgeUsesRawId(t *testing.T) {
	schema := visual.GenerateComparison([]string{"a", "b", "c"}, visual.ComparisonLegacy)

	d := RenderDiagram(schema)
	assert.Equal(t, []string{"a vs b", "left-1 vs c"}, d.Edges)
}

func TestRenderMindMap(t *testing.T) {
	schema := visual.GenerateMindMap([]string{"x", "y"})

	d := RenderDiagram(schema)
	assert.Empty(t, d.Left)
	assert.Empty(t, d.Right)
	assert.Equal(t, []string{"x", "y"}, d.Nodes)
	assert.Equal(t, []string{"x → y"}, d.Edges)
	assert.Equal(t, []string{""}, d.Connections)

	tbl := RenderTable(schema)
	assert.Equal(t, []string{"Aspect", "x", "y"}, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestRenderTableShortSchema(t *testing.T) {
	tbl := RenderTable(visual.GenerateFlowchart([]string{"only"}))
	assert.Equal(t, []string{"Aspect", "only", ""}, tbl.Header)

	tbl = RenderTable(visual.GenerateFlowchart(nil))
	assert.Equal(t, []string{"Aspect", "", ""}, tbl.Header)
	assert.NotNil(t, tbl.Rows)

	d := RenderDiagram(visual.GenerateFlowchart(nil))
	assert.Empty(t, d.LeftTitle)
	assert.Empty(t, d.RightTitle)
	assert.Equal(t, "Common Factors", d.CenterTitle)
}
