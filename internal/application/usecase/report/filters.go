package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/expire-tracker/backend/internal/domain/error"
)

// ReportType selects how much of the product listing the document includes.
type ReportType string

const (
	// ReportTypeSummary renders statistics and charts only, no product table.
	ReportTypeSummary ReportType = "summary"
	// ReportTypeDetailed renders everything including the full product table.
	ReportTypeDetailed ReportType = "detailed"
	// ReportTypeCritical restricts the product table to expired and
	// expiring-soon rows.
	ReportTypeCritical ReportType = "critical"
)

// DateRange bounds the expiry dates of the reported products. Either side
// may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Filters is the recognized report configuration. Unlike the loose request
// maps of earlier systems, every option is enumerated with a stated effect.
type Filters struct {
	// Name filters products whose name contains the value, case-insensitively.
	Name string
	// CategoryID restricts the report to one category.
	CategoryID *uuid.UUID
	// Status restricts to products with the given persisted status.
	Status string
	// DateRange bounds the expiry dates included.
	DateRange DateRange
	// SortBy is one of: name, expiryDate, status, createdAt.
	SortBy string
	// SortOrder is ASC or DESC.
	SortOrder string
	// IncludeCharts toggles the chart/risk/trend pages.
	IncludeCharts bool
	// ReportType is summary, detailed, or critical.
	ReportType ReportType
}

var validSortKeys = map[string]bool{
	"name":       true,
	"expiryDate": true,
	"status":     true,
	"createdAt":  true,
}

// Validate checks the filters and returns a coded validation error naming the
// offending field.
func (f *Filters) Validate() error {
	if f.ReportType == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeReportTypeRequired,
			"reportType is required",
			domainerror.ErrReportTypeRequired,
		)
	}

	switch f.ReportType {
	case ReportTypeSummary, ReportTypeDetailed, ReportTypeCritical:
	default:
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			fmt.Sprintf("reportType must be summary, detailed, or critical, got %q", f.ReportType),
			domainerror.ErrInvalidReportType,
		)
	}

	if f.SortBy != "" && !validSortKeys[f.SortBy] {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidSortKey,
			fmt.Sprintf("sortBy must be one of name, expiryDate, status, createdAt, got %q", f.SortBy),
			domainerror.ErrInvalidSortKey,
		)
	}

	if f.DateRange.Start != nil && f.DateRange.End != nil && f.DateRange.End.Before(*f.DateRange.Start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"dateRange end must not be before start",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}

// Summary restates the applied filters as a single human-readable line for
// the report's executive summary.
func (f *Filters) Summary() string {
	var parts []string
	if f.Name != "" {
		parts = append(parts, fmt.Sprintf("Name contains: %q", f.Name))
	}
	if f.CategoryID != nil {
		parts = append(parts, fmt.Sprintf("Category ID: %s", f.CategoryID))
	}
	if f.Status != "" {
		parts = append(parts, fmt.Sprintf("Status: %s", f.Status))
	}
	if f.DateRange.Start != nil {
		parts = append(parts, fmt.Sprintf("Expiry after: %s", f.DateRange.Start.Format("2006-01-02")))
	}
	if f.DateRange.End != nil {
		parts = append(parts, fmt.Sprintf("Expiry before: %s", f.DateRange.End.Format("2006-01-02")))
	}

	if len(parts) == 0 {
		return "No filters applied - showing all products"
	}
	return strings.Join(parts, " | ")
}
