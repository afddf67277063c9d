package report

import (
	"testing"
	"time"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

func TestAssessRisks(t *testing.T) {
	t.Run("healthy inventory yields single low finding", func(t *testing.T) {
		snap := &Snapshot{Total: 10, Fresh: 10}
		findings := AssessRisks(snap)

		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if findings[0].Level != RiskLow {
			t.Errorf("expected low finding, got %s", findings[0].Level)
		}
		if findings[0].Title != "Healthy Inventory Status" {
			t.Errorf("unexpected title: %s", findings[0].Title)
		}
	})

	t.Run("expired products yield high finding", func(t *testing.T) {
		snap := &Snapshot{Total: 10, Expired: 3, Fresh: 7}
		findings := AssessRisks(snap)

		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if findings[0].Level != RiskHigh {
			t.Errorf("expected high finding, got %s", findings[0].Level)
		}
	})

	t.Run("expiring volume above twenty percent fires both volume checks", func(t *testing.T) {
		snap := &Snapshot{Total: 10, ExpiringSoon: 3, Fresh: 7}
		findings := AssessRisks(snap)

		if len(findings) != 2 {
			t.Fatalf("expected 2 findings, got %d", len(findings))
		}
		if findings[0].Level != RiskHigh || findings[1].Level != RiskMedium {
			t.Errorf("expected high then medium, got %s then %s", findings[0].Level, findings[1].Level)
		}
	})

	t.Run("expiring volume between ten and twenty percent fires medium only", func(t *testing.T) {
		snap := &Snapshot{Total: 20, ExpiringSoon: 3, Fresh: 17}
		findings := AssessRisks(snap)

		if len(findings) != 1 {
			t.Fatalf("expected 1 finding, got %d", len(findings))
		}
		if findings[0].Level != RiskMedium {
			t.Errorf("expected medium finding, got %s", findings[0].Level)
		}
	})

	t.Run("all checks can fire together", func(t *testing.T) {
		snap := &Snapshot{Total: 10, Expired: 2, ExpiringSoon: 5, Fresh: 3}
		findings := AssessRisks(snap)

		if len(findings) != 3 {
			t.Fatalf("expected 3 findings, got %d", len(findings))
		}
	})
}

func TestOverallRisk(t *testing.T) {
	tests := []struct {
		name          string
		findings      []RiskFinding
		expectedScore int
		expectedLevel RiskLevel
	}{
		{
			name:          "single low finding",
			findings:      []RiskFinding{{Level: RiskLow}},
			expectedScore: 5,
			expectedLevel: RiskLow,
		},
		{
			name:          "high plus medium crosses medium threshold",
			findings:      []RiskFinding{{Level: RiskHigh}, {Level: RiskMedium}},
			expectedScore: 45,
			expectedLevel: RiskMedium,
		},
		{
			name:          "three highs cross high threshold",
			findings:      []RiskFinding{{Level: RiskHigh}, {Level: RiskHigh}, {Level: RiskHigh}},
			expectedScore: 90,
			expectedLevel: RiskHigh,
		},
		{
			name: "score caps at one hundred",
			findings: []RiskFinding{
				{Level: RiskHigh}, {Level: RiskHigh}, {Level: RiskHigh}, {Level: RiskHigh},
			},
			expectedScore: 100,
			expectedLevel: RiskHigh,
		},
		{
			name:          "no findings score zero",
			findings:      nil,
			expectedScore: 0,
			expectedLevel: RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverallRisk(tt.findings)
			if got.Score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, got.Score)
			}
			if got.Level != tt.expectedLevel {
				t.Errorf("expected level %s, got %s", tt.expectedLevel, got.Level)
			}
		})
	}
}

func TestProductRiskLevel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expiry   time.Time
		expected string
	}{
		{"expired is critical", now.AddDate(0, 0, -1), "Critical"},
		{"within a week is high", now.AddDate(0, 0, 5), "High"},
		{"within a month is medium", now.AddDate(0, 0, 20), "Medium"},
		{"beyond a month is low", now.AddDate(0, 0, 60), "Low"},
		{"no expiry date is low", time.Time{}, "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entity.Product{ExpiryDate: tt.expiry}
			if got := ProductRiskLevel(p, now); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
