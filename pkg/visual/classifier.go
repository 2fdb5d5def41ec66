package visual

import "strings"

// DetermineChartType picks a chart type from trigger phrases in the query.
// Rules are checked in order and the first match wins.
func DetermineChartType(query string) ChartType {
	q := strings.ToLower(query)

	// Process-based questions
	if containsAny(q, "how to", "steps", "process") {
		return ChartFlowchart
	}

	// Comparison questions
	if containsAny(q, "compare", "difference", "versus", "vs") {
		return ChartComparison
	}

	// Exploration questions
	if containsAny(q, "what are", "explain", "describe") {
		return ChartMindMap
	}

	return ChartConcept
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
