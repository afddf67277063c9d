package report

import (
	"strings"
	"testing"
)

func TestRecommend(t *testing.T) {
	t.Run("healthy snapshot yields no recommendations", func(t *testing.T) {
		recs := Recommend(&Snapshot{Total: 10, Fresh: 10})
		if len(recs) != 0 {
			t.Errorf("expected no recommendations, got %d", len(recs))
		}
	})

	t.Run("expired products yield high priority recommendation", func(t *testing.T) {
		recs := Recommend(&Snapshot{Total: 10, Expired: 4, Fresh: 6})
		if len(recs) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(recs))
		}
		if recs[0].Priority != PriorityHigh {
			t.Errorf("expected high priority, got %s", recs[0].Priority)
		}
		if !strings.Contains(recs[0].Description, "4 expired products") {
			t.Errorf("expected count in description, got %q", recs[0].Description)
		}
	})

	t.Run("expiring products yield medium priority recommendation", func(t *testing.T) {
		recs := Recommend(&Snapshot{Total: 10, ExpiringSoon: 2, Fresh: 8})
		if len(recs) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(recs))
		}
		if recs[0].Priority != PriorityMedium {
			t.Errorf("expected medium priority, got %s", recs[0].Priority)
		}
	})

	t.Run("both conditions yield both recommendations in priority order", func(t *testing.T) {
		recs := Recommend(&Snapshot{Total: 10, Expired: 1, ExpiringSoon: 2, Fresh: 7})
		if len(recs) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(recs))
		}
		if recs[0].Priority != PriorityHigh || recs[1].Priority != PriorityMedium {
			t.Errorf("expected high then medium, got %s then %s", recs[0].Priority, recs[1].Priority)
		}
	})
}

func TestSuggestions(t *testing.T) {
	t.Run("empty collection yields no suggestions", func(t *testing.T) {
		suggestions := Suggestions(&Snapshot{})
		if len(suggestions) != 0 {
			t.Errorf("expected no suggestions, got %v", suggestions)
		}
	})

	t.Run("mostly unhealthy inventory suggests restocking", func(t *testing.T) {
		suggestions := Suggestions(&Snapshot{Total: 10, Expired: 6, Fresh: 4})
		found := false
		for _, s := range suggestions {
			if strings.Contains(s, "restocking") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected restocking suggestion, got %v", suggestions)
		}
	})

	t.Run("expired and expiring each add a suggestion", func(t *testing.T) {
		suggestions := Suggestions(&Snapshot{Total: 10, Expired: 1, ExpiringSoon: 1, Fresh: 8})
		if len(suggestions) != 2 {
			t.Errorf("expected 2 suggestions, got %v", suggestions)
		}
	})
}

func TestRiskActionText(t *testing.T) {
	t.Run("no actionable findings yields placeholder", func(t *testing.T) {
		text := RiskActionText([]RiskFinding{{Level: RiskLow, Description: "all good"}})
		if text != "No immediate actions required." {
			t.Errorf("unexpected text: %q", text)
		}
	})

	t.Run("high and medium findings each get a line", func(t *testing.T) {
		text := RiskActionText([]RiskFinding{
			{Level: RiskHigh, Description: "remove expired stock"},
			{Level: RiskMedium, Description: "reorder fresh stock"},
		})

		lines := strings.Split(text, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[0], "- Immediate action required:") {
			t.Errorf("unexpected first line: %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "- Plan action soon:") {
			t.Errorf("unexpected second line: %q", lines[1])
		}
	})
}
