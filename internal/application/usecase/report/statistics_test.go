package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expire-tracker/backend/internal/domain/entity"
)

func testProduct(name string, expiry time.Time, category string, value float64) *entity.ProductWithCategory {
	var cat *entity.Category
	if category != "" {
		cat = &entity.Category{ID: uuid.New(), Name: category}
	}
	p := &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		ExpiryDate: expiry,
		Value:      decimal.NewFromFloat(value),
	}
	if cat != nil {
		p.CategoryID = cat.ID
	}
	return &entity.ProductWithCategory{Product: p, Category: cat}
}

func TestAggregate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty collection yields zeroed snapshot with full health", func(t *testing.T) {
		snap := Aggregate(nil, now, 30)
		if snap.Total != 0 || snap.WithExpiry != 0 {
			t.Errorf("expected empty snapshot, got total=%d withExpiry=%d", snap.Total, snap.WithExpiry)
		}
		if snap.ExpiryRate != 0 {
			t.Errorf("expected expiry rate 0, got %f", snap.ExpiryRate)
		}
		if snap.HealthScore != 100 {
			t.Errorf("expected health score 100, got %f", snap.HealthScore)
		}
	})

	t.Run("buckets products by expiry status", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("expired", now.AddDate(0, 0, -5), "Dairy", 10),
			testProduct("expiring", now.AddDate(0, 0, 10), "Dairy", 20),
			testProduct("fresh", now.AddDate(0, 0, 90), "Bakery", 30),
			testProduct("untracked", time.Time{}, "Bakery", 40),
		}

		snap := Aggregate(products, now, 30)

		if snap.Total != 4 {
			t.Errorf("expected total 4, got %d", snap.Total)
		}
		if snap.WithExpiry != 3 {
			t.Errorf("expected 3 with expiry, got %d", snap.WithExpiry)
		}
		if snap.Expired != 1 || snap.ExpiringSoon != 1 || snap.Fresh != 1 {
			t.Errorf("expected 1/1/1 buckets, got %d/%d/%d", snap.Expired, snap.ExpiringSoon, snap.Fresh)
		}
		if snap.CategoriesCount != 2 {
			t.Errorf("expected 2 categories, got %d", snap.CategoriesCount)
		}
		if !snap.TotalValue.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total value 100, got %s", snap.TotalValue)
		}
	})

	t.Run("expiry rate counts expired and expiring over total", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("expired", now.AddDate(0, 0, -1), "Dairy", 0),
			testProduct("fresh-1", now.AddDate(0, 0, 90), "Dairy", 0),
			testProduct("fresh-2", now.AddDate(0, 0, 90), "Dairy", 0),
			testProduct("fresh-3", now.AddDate(0, 0, 90), "Dairy", 0),
		}

		snap := Aggregate(products, now, 30)

		if snap.ExpiryRate != 25 {
			t.Errorf("expected expiry rate 25, got %f", snap.ExpiryRate)
		}
		if snap.HealthScore != 75 {
			t.Errorf("expected health score 75, got %f", snap.HealthScore)
		}
	})

	t.Run("average days excludes untracked products", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("a", now.AddDate(0, 0, 10), "Dairy", 0),
			testProduct("b", now.AddDate(0, 0, 20), "Dairy", 0),
			testProduct("untracked", time.Time{}, "Dairy", 0),
		}

		snap := Aggregate(products, now, 30)

		if snap.AvgDaysToExpiry != 15 {
			t.Errorf("expected average 15 days, got %f", snap.AvgDaysToExpiry)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("counts only products inside the warning window", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("in-window-1", now.AddDate(0, 0, 5), "Dairy", 0),
			testProduct("in-window-2", now.AddDate(0, 0, 25), "Dairy", 0),
			testProduct("in-window-3", now.AddDate(0, 0, 15), "Bakery", 0),
			testProduct("expired", now.AddDate(0, 0, -2), "Bakery", 0),
			testProduct("beyond-window", now.AddDate(0, 0, 60), "Bakery", 0),
			testProduct("untracked", time.Time{}, "Dairy", 0),
		}

		breakdown := CategoryBreakdown(products, now, 30, 8)

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(breakdown))
		}
		if breakdown[0].Name != "Dairy" || breakdown[0].Count != 2 {
			t.Errorf("expected Dairy with 2, got %s with %d", breakdown[0].Name, breakdown[0].Count)
		}
		if breakdown[1].Name != "Bakery" || breakdown[1].Count != 1 {
			t.Errorf("expected Bakery with 1, got %s with %d", breakdown[1].Name, breakdown[1].Count)
		}
	})

	t.Run("ties keep first-observed order", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("a", now.AddDate(0, 0, 5), "Bakery", 0),
			testProduct("b", now.AddDate(0, 0, 5), "Dairy", 0),
		}

		breakdown := CategoryBreakdown(products, now, 30, 8)

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(breakdown))
		}
		if breakdown[0].Name != "Bakery" || breakdown[1].Name != "Dairy" {
			t.Errorf("expected Bakery then Dairy, got %s then %s", breakdown[0].Name, breakdown[1].Name)
		}
	})

	t.Run("truncates to topN", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("a", now.AddDate(0, 0, 5), "A", 0),
			testProduct("b", now.AddDate(0, 0, 5), "B", 0),
			testProduct("c", now.AddDate(0, 0, 5), "C", 0),
		}

		breakdown := CategoryBreakdown(products, now, 30, 2)

		if len(breakdown) != 2 {
			t.Errorf("expected 2 categories after truncation, got %d", len(breakdown))
		}
	})

	t.Run("missing category relation groups as Uncategorized", func(t *testing.T) {
		products := []*entity.ProductWithCategory{
			testProduct("orphan", now.AddDate(0, 0, 5), "", 0),
		}

		breakdown := CategoryBreakdown(products, now, 30, 8)

		if len(breakdown) != 1 || breakdown[0].Name != "Uncategorized" {
			t.Errorf("expected one Uncategorized group, got %+v", breakdown)
		}
	})
}

func TestExpiryTimeline(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	products := []*entity.ProductWithCategory{
		testProduct("this-month", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "Dairy", 0),
		testProduct("next-month", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "Dairy", 0),
		testProduct("past", time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), "Dairy", 0),
		testProduct("beyond-horizon", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "Dairy", 0),
	}

	timeline := ExpiryTimeline(products, now)

	if len(timeline) != 6 {
		t.Fatalf("expected 6 timeline points, got %d", len(timeline))
	}
	if !timeline[0].IsCurrentMonth {
		t.Error("expected first point to be the current month")
	}
	if timeline[0].Label != "Jun 2025" {
		t.Errorf("expected label Jun 2025, got %s", timeline[0].Label)
	}
	if timeline[0].Count != 1 {
		t.Errorf("expected 1 product in current month, got %d", timeline[0].Count)
	}
	if timeline[1].Count != 1 {
		t.Errorf("expected 1 product in next month, got %d", timeline[1].Count)
	}
	total := 0
	for _, p := range timeline {
		total += p.Count
	}
	if total != 2 {
		t.Errorf("expected 2 products inside the six-month horizon, got %d", total)
	}
}

func TestExpiryTrend(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	products := []*entity.ProductWithCategory{
		testProduct("six-back", time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), "Dairy", 0),
		testProduct("current", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Dairy", 0),
		testProduct("five-ahead", time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), "Dairy", 0),
	}

	trend := ExpiryTrend(products, now)

	if len(trend) != 12 {
		t.Fatalf("expected 12 trend points, got %d", len(trend))
	}
	if trend[0].Label != "Dec" || !trend[0].IsPast || trend[0].Value != 1 {
		t.Errorf("unexpected first point: %+v", trend[0])
	}
	if !trend[6].IsCurrent || trend[6].Value != 1 {
		t.Errorf("expected current month at index 6 with value 1, got %+v", trend[6])
	}
	if trend[11].Label != "Nov" || trend[11].Value != 1 {
		t.Errorf("unexpected last point: %+v", trend[11])
	}
	for i, p := range trend {
		if p.IsPast != (i < 6) {
			t.Errorf("point %d: unexpected IsPast=%v", i, p.IsPast)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)

	start, end := monthBounds(now, 0)
	if !start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %s", start)
	}
	if !end.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %s", end)
	}

	start, end = monthBounds(now, -1)
	if !start.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected previous month start: %s", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected previous month end: %s", end)
	}
}
