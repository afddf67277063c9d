package report

import (
	"fmt"
	"time"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// RiskLevel classifies the severity of a finding or the overall score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskFinding is one named, severity-leveled observation about the
// inventory's expiry risk, independent of other findings.
type RiskFinding struct {
	Level       RiskLevel
	Title       string
	Description string
}

// RiskScore is the aggregate 0-100 figure summarizing all active findings.
type RiskScore struct {
	Score int
	Level RiskLevel
}

// Scoring weights per finding severity. The sum is capped at 100.
const (
	highFindingWeight   = 30
	mediumFindingWeight = 15
	lowFindingWeight    = 5
)

// AssessRisks derives risk findings from a statistics snapshot. The checks
// are independent; more than one may fire. When none fire, a single healthy
// low finding is returned so the report always has a risk section.
func AssessRisks(snap *Snapshot) []RiskFinding {
	var findings []RiskFinding

	if snap.Expired > 0 {
		findings = append(findings, RiskFinding{
			Level:       RiskHigh,
			Title:       "Expired Products Detected",
			Description: fmt.Sprintf("%d products have expired and require immediate removal from inventory.", snap.Expired),
		})
	}

	expiringPct := 0.0
	if snap.Total > 0 {
		expiringPct = float64(snap.ExpiringSoon) / float64(snap.Total) * 100
	}

	if float64(snap.ExpiringSoon) > float64(snap.Total)*0.2 {
		findings = append(findings, RiskFinding{
			Level:       RiskHigh,
			Title:       "High Volume of Products Expiring Soon",
			Description: fmt.Sprintf("%d products (%.1f%%) will expire within 30 days.", snap.ExpiringSoon, expiringPct),
		})
	}

	if float64(snap.ExpiringSoon) > float64(snap.Total)*0.1 {
		findings = append(findings, RiskFinding{
			Level:       RiskMedium,
			Title:       "Inventory Balance Warning",
			Description: fmt.Sprintf("Consider reordering fresh stock as %.1f%% of inventory is approaching expiry.", expiringPct),
		})
	}

	if len(findings) == 0 {
		findings = append(findings, RiskFinding{
			Level:       RiskLow,
			Title:       "Healthy Inventory Status",
			Description: "Inventory levels and expiry dates are within normal parameters.",
		})
	}

	return findings
}

// OverallRisk sums the finding weights into a capped 0-100 score. The score
// is monotonically non-decreasing in the number and severity of findings.
func OverallRisk(findings []RiskFinding) RiskScore {
	score := 0
	for _, f := range findings {
		switch f.Level {
		case RiskHigh:
			score += highFindingWeight
		case RiskMedium:
			score += mediumFindingWeight
		case RiskLow:
			score += lowFindingWeight
		}
	}
	if score > 100 {
		score = 100
	}

	level := RiskLow
	if score > 70 {
		level = RiskHigh
	} else if score > 40 {
		level = RiskMedium
	}

	return RiskScore{Score: score, Level: level}
}

// ProductRiskLevel rates a single product for the report table. Products
// without an expiry date rate Low.
func ProductRiskLevel(p *entity.Product, now time.Time) string {
	if p.ExpiryDate.IsZero() {
		return "Low"
	}
	days := daysToExpiry(p.ExpiryDate, now)
	switch {
	case days < 0:
		return "Critical"
	case days <= 7:
		return "High"
	case days <= 30:
		return "Medium"
	default:
		return "Low"
	}
}
