// Package report contains the expiry analytics and report generation use cases.
package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

// Snapshot holds summary statistics computed over a product collection at a
// point in time. It is ephemeral: always re-derived from products, never
// persisted.
type Snapshot struct {
	Total        int
	Expired      int
	ExpiringSoon int
	Fresh        int
	// WithExpiry counts products with a known expiry date. The three buckets
	// above partition exactly these.
	WithExpiry      int
	AvgDaysToExpiry float64
	CategoriesCount int
	TotalValue      decimal.Decimal
	// ExpiryRate is (expired + expiringSoon) / total as a percentage.
	ExpiryRate float64
	// HealthScore is max(0, 100 - ExpiryRate).
	HealthScore float64
}

// CategoryCount is one entry of the expiring-window category breakdown.
type CategoryCount struct {
	Name  string
	Count int
}

// TimelinePoint is one month of the forward expiry timeline.
type TimelinePoint struct {
	Label          string
	Count          int
	IsCurrentMonth bool
}

// TrendPoint is one month of the trailing+leading expiry trend.
type TrendPoint struct {
	Label     string
	Value     int
	IsPast    bool
	IsCurrent bool
}

// daysToExpiry returns the days from now until expiry, rounded up.
func daysToExpiry(expiry, now time.Time) int {
	diff := expiry.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Aggregate computes a statistics snapshot over the given products.
//
// Products without an expiry date count toward Total but are excluded from
// status bucketing and the day average. The function is pure and
// deterministic for a fixed now.
func Aggregate(products []*entity.ProductWithCategory, now time.Time, warningWindowDays int) *Snapshot {
	snap := &Snapshot{
		Total:      len(products),
		TotalValue: decimal.Zero,
	}

	seen := make(map[string]bool)
	daysSum := 0

	for _, p := range products {
		if p.Category != nil && !seen[p.Category.Name] {
			seen[p.Category.Name] = true
			snap.CategoriesCount++
		}

		if !p.Product.ExpiryDate.IsZero() {
			days := daysToExpiry(p.Product.ExpiryDate, now)
			daysSum += days
			snap.WithExpiry++

			switch {
			case days < 0:
				snap.Expired++
			case days <= warningWindowDays:
				snap.ExpiringSoon++
			default:
				snap.Fresh++
			}
		}

		snap.TotalValue = snap.TotalValue.Add(p.Product.Value)
	}

	if snap.WithExpiry > 0 {
		snap.AvgDaysToExpiry = float64(daysSum) / float64(snap.WithExpiry)
	}

	if snap.Total > 0 {
		snap.ExpiryRate = float64(snap.Expired+snap.ExpiringSoon) / float64(snap.Total) * 100
	}
	snap.HealthScore = math.Max(0, 100-snap.ExpiryRate)

	return snap
}

// CategoryBreakdown groups products expiring within the warning window by
// category and returns the topN groups by count, descending. Ties keep the
// order in which categories were first observed, so the result is stable
// under re-invocation with identical input.
func CategoryBreakdown(products []*entity.ProductWithCategory, now time.Time, warningWindowDays int, topN int) []CategoryCount {
	windowEnd := now.AddDate(0, 0, warningWindowDays)

	counts := make(map[string]int)
	var order []string

	for _, p := range products {
		if p.Product.ExpiryDate.IsZero() {
			continue
		}
		if p.Product.ExpiryDate.Before(now) || p.Product.ExpiryDate.After(windowEnd) {
			continue
		}
		name := p.CategoryName()
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	breakdown := make([]CategoryCount, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryCount{Name: name, Count: counts[name]})
	}

	// Stable insertion sort keeps discovery order among equal counts.
	for i := 1; i < len(breakdown); i++ {
		for j := i; j > 0 && breakdown[j].Count > breakdown[j-1].Count; j-- {
			breakdown[j], breakdown[j-1] = breakdown[j-1], breakdown[j]
		}
	}

	if len(breakdown) > topN {
		breakdown = breakdown[:topN]
	}
	return breakdown
}

// ExpiryTimeline counts products expiring in each of the six calendar months
// starting with the current one. Offset 0 is flagged as the current month.
func ExpiryTimeline(products []*entity.ProductWithCategory, now time.Time) []TimelinePoint {
	timeline := make([]TimelinePoint, 0, 6)
	for i := 0; i < 6; i++ {
		start, end := monthBounds(now, i)
		timeline = append(timeline, TimelinePoint{
			Label:          start.Format("Jan 2006"),
			Count:          countExpiringBetween(products, start, end),
			IsCurrentMonth: i == 0,
		})
	}
	return timeline
}

// ExpiryTrend counts products expiring in each calendar month from six months
// back through five months ahead, for the historical/forecast trend line.
func ExpiryTrend(products []*entity.ProductWithCategory, now time.Time) []TrendPoint {
	trend := make([]TrendPoint, 0, 12)
	for i := -6; i <= 5; i++ {
		start, end := monthBounds(now, i)
		trend = append(trend, TrendPoint{
			Label:     start.Format("Jan"),
			Value:     countExpiringBetween(products, start, end),
			IsPast:    i < 0,
			IsCurrent: i == 0,
		})
	}
	return trend
}

// monthBounds returns the half-open interval [start, end) of the calendar
// month offset months away from now's month.
func monthBounds(now time.Time, offset int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, offset, 0)
	return start, start.AddDate(0, 1, 0)
}

func countExpiringBetween(products []*entity.ProductWithCategory, start, end time.Time) int {
	count := 0
	for _, p := range products {
		expiry := p.Product.ExpiryDate
		if expiry.IsZero() {
			continue
		}
		if !expiry.Before(start) && expiry.Before(end) {
			count++
		}
	}
	return count
}
