package reconcile

import "fmt"

// buildSummary aggregates per-key results.
func buildSummary(results []Result) Summary {
	var summary Summary
	summary.TotalKeys = len(results)

	for _, result := range results {
		switch {
		case result.InA && !result.InB:
			summary.OnlyInA++
		case result.InB && !result.InA:
			summary.OnlyInB++
		}
		if result.SkipReason != "" {
			summary.Skipped++
		}
		if result.Compared {
			summary.Compared++
			if len(result.Mismatches) > 0 {
				summary.Mismatched++
			}
		}
	}

	return summary
}

// Presence describes which source lacks the key of a result.
func Presence(result Result, nameA, nameB string) string {
	switch {
	case result.InA && result.InB:
		return "present in both"
	case result.InA:
		return fmt.Sprintf("missing in %s", nameB)
	case result.InB:
		return fmt.Sprintf("missing in %s", nameA)
	default:
		return fmt.Sprintf("missing in %s and %s", nameA, nameB)
	}
}
