// Command debug_visual prints the chart type, concepts, schema and both
// rendered views for a query, without calling any LLM.
//
//	go run ./cmd/debug_visual "compare cats vs dogs"
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"neoyngpt-be/pkg/render"
	"neoyngpt-be/pkg/visual"

	"github.com/fatih/color"
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for concept-map edges (0 = random)")
	pairing := flag.String("pairing", string(visual.ComparisonLegacy), "comparison pairing: legacy|paired")
	asJSON := flag.Bool("json", false, "print the schema as JSON")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(query) == "" {
		color.Red("usage: debug_visual [-seed N] [-pairing legacy|paired] [-json] <query>")
		os.Exit(2)
	}

	opts := []visual.Option{visual.WithComparisonPairing(visual.ParseComparisonPairing(*pairing))}
	if *seed != 0 {
		opts = append(opts, visual.WithRandomSource(visual.NewSeededSource(*seed)))
	}
	analysis := visual.NewVisualizer(opts...).Analyze(query)

	color.Cyan("Query:      %s", query)
	color.Cyan("Chart type: %s", analysis.ChartType)
	color.Cyan("Concepts:   %v", analysis.Concepts)

	if *asJSON {
		out, _ := json.MarshalIndent(analysis.Schema, "", "  ")
		fmt.Println(string(out))
		return
	}

	color.Yellow("\nNodes")
	for _, n := range analysis.Schema.Nodes {
		fmt.Printf("  %-10s %-8s %s\n", n.Id, n.Type, n.Label)
	}

	color.Yellow("\nConnections")
	for _, c := range analysis.Schema.Connections {
		line := fmt.Sprintf("  %s -> %s %s", c.From, c.To, c.Label)
		if !analysis.Schema.HasNode(c.From) || !analysis.Schema.HasNode(c.To) {
			color.Red("%s (dangling)", line)
			continue
		}
		fmt.Println(line)
	}

	views := render.Render(&analysis.Schema)

	color.Yellow("\nDiagram view")
	d := views.Diagram
	fmt.Printf("  %s: %v\n  %s: %v\n  %s: %v\n", d.LeftTitle, d.Left, d.CenterTitle, d.Connections, d.RightTitle, d.Right)
	for _, e := range views.Diagram.Edges {
		fmt.Printf("  %s\n", e)
	}

	color.Yellow("\nTable view")
	fmt.Printf("  %v\n", views.Table.Header)
	for _, row := range views.Table.Rows {
		fmt.Printf("  %v\n", row)
	}

	color.Green("\nDone")
}
