package report

import (
	"fmt"
	"strings"
)

// Priority classifies the urgency of a recommendation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one actionable item derived from the statistics snapshot.
type Recommendation struct {
	Priority    Priority
	Title       string
	Description string
}

// Recommend derives action items from a statistics snapshot. An empty slice
// means no section is rendered.
func Recommend(snap *Snapshot) []Recommendation {
	var recs []Recommendation

	if snap.Expired > 0 {
		recs = append(recs, Recommendation{
			Priority:    PriorityHigh,
			Title:       "Immediate Action Required",
			Description: fmt.Sprintf("Remove %d expired products from inventory immediately to prevent health risks.", snap.Expired),
		})
	}

	if snap.ExpiringSoon > 0 {
		recs = append(recs, Recommendation{
			Priority:    PriorityMedium,
			Title:       "Promotion Strategy",
			Description: fmt.Sprintf("Create promotional campaigns for %d products expiring within 30 days.", snap.ExpiringSoon),
		})
	}

	return recs
}

// Suggestions derives the free-text suggestion lines shown on the report
// summary surface. The restock suggestion compares healthy count against half
// the total, which cannot fire on an empty collection.
func Suggestions(snap *Snapshot) []string {
	var suggestions []string

	if snap.Expired > 0 {
		suggestions = append(suggestions, "Review expired products and remove from inventory.")
	}
	if snap.ExpiringSoon > 0 {
		suggestions = append(suggestions, "Contact suppliers for soon-to-expire items.")
	}
	if snap.Total > 0 && float64(snap.Fresh) < float64(snap.Total)*0.5 {
		suggestions = append(suggestions, "Consider restocking inventory with fresh products.")
	}

	return suggestions
}

// RiskActionText renders one bullet line per high or medium finding for the
// recommended-actions block of the risk section.
func RiskActionText(findings []RiskFinding) string {
	var lines []string
	for _, f := range findings {
		switch f.Level {
		case RiskHigh:
			lines = append(lines, fmt.Sprintf("- Immediate action required: %s", f.Description))
		case RiskMedium:
			lines = append(lines, fmt.Sprintf("- Plan action soon: %s", f.Description))
		}
	}
	if len(lines) == 0 {
		return "No immediate actions required."
	}
	return strings.Join(lines, "\n")
}
