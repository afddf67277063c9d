package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/expire-tracker/backend/internal/application/usecase/report"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// Page layout in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Renderer implements report.DocumentRenderer with a buffered PDF document.
// The whole document is assembled in memory so page totals can be stamped
// into every footer and so a failure never yields a half-written stream.
type Renderer struct {
	warningWindowDays int
}

// NewRenderer creates a new PDF Renderer instance.
func NewRenderer(warningWindowDays int) *Renderer {
	return &Renderer{warningWindowDays: warningWindowDays}
}

// ContentType returns the MIME type of the rendered document.
func (r *Renderer) ContentType() string { return "application/pdf" }

// FileExtension returns the file extension of the rendered document.
func (r *Renderer) FileExtension() string { return "pdf" }

// categoryChartTopN bounds the breakdown chart to the ten largest categories.
const categoryChartTopN = 10

// Render assembles the full report document for the given products. The chart
// block is skipped entirely when there are no products to chart.
func (r *Renderer) Render(products []*entity.ProductWithCategory, filters report.Filters, now time.Time) ([]byte, error) {
	snap := report.Aggregate(products, now, r.warningWindowDays)

	doc := newDocument(now)
	doc.addHeader(now)
	doc.addExecutiveSummary(snap, filters, r.warningWindowDays)
	doc.addKPITiles(snap)

	if filters.IncludeCharts && len(products) > 0 {
		doc.addStatusChart(snap)
		doc.addCategoryChart(r.chartBreakdown(products, now))
		doc.addRiskSection(snap)
		doc.addTrendChart(report.ExpiryTrend(products, now))
	}

	if filters.ReportType != report.ReportTypeSummary {
		doc.addProductTable(products, filters.ReportType, now)
	}

	doc.addRecommendations(report.Recommend(snap))

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// document wraps the underlying PDF handle with report-level drawing helpers.
type document struct {
	pdf *gofpdf.Fpdf
}

// chartBreakdown computes the category counts backing the breakdown chart.
func (r *Renderer) chartBreakdown(products []*entity.ProductWithCategory, now time.Time) []report.CategoryCount {
	return report.CategoryBreakdown(products, now, r.warningWindowDays, categoryChartTopN)
}

func newDocument(now time.Time) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
		pdf.SetLineWidth(0.2)
		pdf.Line(marginLeft, pageHeight-marginBottom+4, pageWidth-marginRight, pageHeight-marginBottom+4)

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
		pdf.SetXY(marginLeft, pageHeight-marginBottom+6)
		pdf.CellFormat(contentWidth*3/4, 4, footerText(now), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/4, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	return &document{pdf: pdf}
}

// footerText is the copyright and confidentiality line stamped on every page.
func footerText(now time.Time) string {
	return fmt.Sprintf("ExpireTracker (c) %d | Confidential Report | Generated: %s",
		now.Year(), now.Format("2006-01-02 15:04"))
}

// ensureSpace starts a new page when fewer than h millimeters remain.
func (d *document) ensureSpace(h float64) {
	if d.pdf.GetY()+h > pageHeight-marginBottom {
		d.pdf.AddPage()
	}
}

func (d *document) setFill(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }
func (d *document) setText(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }
func (d *document) setDraw(c rgb) { d.pdf.SetDrawColor(c.r, c.g, c.b) }

// sectionTitle draws a section heading with a thin underline.
func (d *document) sectionTitle(title string) {
	d.ensureSpace(16)
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 13)
	d.setText(colorHeaderBg)
	d.pdf.CellFormat(contentWidth, 7, title, "", 1, "L", false, 0, "")
	d.setDraw(colorPrimary)
	d.pdf.SetLineWidth(0.5)
	y := d.pdf.GetY()
	d.pdf.Line(marginLeft, y, marginLeft+30, y)
	d.pdf.Ln(3)
}

// headerMetaItem is one labeled value of the header metadata row.
type headerMetaItem struct {
	label string
	value string
}

// headerMeta builds the generation date, time, and fixed status tag shown
// under the report title.
func headerMeta(now time.Time) []headerMetaItem {
	return []headerMetaItem{
		{"Generated", now.Format("January 2, 2006")},
		{"Time", now.Format("15:04 MST")},
		{"Status", "Active Report"},
	}
}

// addHeader draws the report title band with the generation metadata row.
func (d *document) addHeader(now time.Time) {
	d.setFill(colorHeaderBg)
	d.pdf.Rect(0, 0, pageWidth, 30, "F")

	d.pdf.SetFont("Helvetica", "B", 18)
	d.setText(colorWhite)
	d.pdf.SetXY(marginLeft, 6)
	d.pdf.CellFormat(contentWidth, 8, "Product Expiry Report", "", 1, "L", false, 0, "")

	metaW := contentWidth / 3
	d.pdf.SetFont("Helvetica", "", 8.5)
	for i, m := range headerMeta(now) {
		d.pdf.SetXY(marginLeft+float64(i)*metaW, 18)
		d.pdf.CellFormat(metaW, 5, fmt.Sprintf("%s: %s", m.label, m.value), "", 0, "L", false, 0, "")
	}

	d.pdf.SetY(35)
}

// statTile is one stat box of the executive summary or KPI sections.
type statTile struct {
	label string
	value string
	sub   string
	color rgb
}

// summaryTiles builds the four executive summary tiles with their subtitles.
func summaryTiles(snap *report.Snapshot, warningWindowDays int) []statTile {
	healthyPct := 0.0
	if snap.Total > 0 {
		healthyPct = float64(snap.Fresh) / float64(snap.Total) * 100
	}
	return []statTile{
		{"Total Products", fmt.Sprintf("%d", snap.Total), fmt.Sprintf("%d categories", snap.CategoriesCount), colorPrimary},
		{"Fresh Products", fmt.Sprintf("%d", snap.Fresh), fmt.Sprintf("%.1f%% healthy", healthyPct), colorFresh},
		{"Expiring Soon", fmt.Sprintf("%d", snap.ExpiringSoon), fmt.Sprintf("Within %d days", warningWindowDays), colorExpiring},
		{"Expired", fmt.Sprintf("%d", snap.Expired), "Critical", colorExpired},
	}
}

// kpiTiles builds the six key metric tiles. Percentages render to one
// decimal, Health Score as a whole number, Total Value as whole currency.
func kpiTiles(snap *report.Snapshot) []statTile {
	return []statTile{
		{label: "Total Products", value: fmt.Sprintf("%d", snap.Total), color: colorPrimary},
		{label: "Expiry Rate", value: fmt.Sprintf("%.1f%%", snap.ExpiryRate), color: colorExpiring},
		{label: "Health Score", value: fmt.Sprintf("%.0f%%", snap.HealthScore), color: colorFresh},
		{label: "Categories", value: fmt.Sprintf("%d", snap.CategoriesCount), color: colorPrimary},
		{label: "Avg Days to Expiry", value: fmt.Sprintf("%.1f", snap.AvgDaysToExpiry), color: colorExpiring},
		{label: "Total Value", value: "$" + snap.TotalValue.StringFixed(0), color: colorFresh},
	}
}

// addExecutiveSummary draws the applied-filters line and four summary tiles.
func (d *document) addExecutiveSummary(snap *report.Snapshot, filters report.Filters, warningWindowDays int) {
	d.sectionTitle("Executive Summary")

	d.pdf.SetFont("Helvetica", "I", 9)
	d.setText(colorMuted)
	d.pdf.MultiCell(contentWidth, 5, filters.Summary(), "", "L", false)
	d.pdf.Ln(2)

	d.tileRow(summaryTiles(snap, warningWindowDays), 4)
}

// addKPITiles draws the six key-performance tiles in two rows of three.
func (d *document) addKPITiles(snap *report.Snapshot) {
	d.sectionTitle("Key Metrics")

	tiles := kpiTiles(snap)
	d.tileRow(tiles[:3], 3)
	d.tileRow(tiles[3:], 3)
}

// tileRow draws one row of equally sized stat tiles.
func (d *document) tileRow(tiles []statTile, perRow int) {
	const tileH = 20.0
	const gap = 4.0
	tileW := (contentWidth - gap*float64(perRow-1)) / float64(perRow)

	d.ensureSpace(tileH + 4)
	y := d.pdf.GetY()

	for i, t := range tiles {
		x := marginLeft + float64(i)*(tileW+gap)

		d.setFill(colorTileBg)
		d.pdf.Rect(x, y, tileW, tileH, "F")
		d.setFill(t.color)
		d.pdf.Rect(x, y, tileW, 1.2, "F")

		d.pdf.SetFont("Helvetica", "B", 13)
		d.setText(t.color)
		d.pdf.SetXY(x, y+3)
		d.pdf.CellFormat(tileW, 6, t.value, "", 0, "C", false, 0, "")

		d.pdf.SetFont("Helvetica", "", 8)
		d.setText(colorMuted)
		d.pdf.SetXY(x, y+10)
		d.pdf.CellFormat(tileW, 4, t.label, "", 0, "C", false, 0, "")

		if t.sub != "" {
			d.pdf.SetFont("Helvetica", "", 7)
			d.pdf.SetXY(x, y+14)
			d.pdf.CellFormat(tileW, 3.5, t.sub, "", 0, "C", false, 0, "")
		}
	}

	d.pdf.SetY(y + tileH + 4)
}

// addRiskSection draws the risk meter, one card per finding, and the
// recommended-actions block when the overall score exceeds the medium
// threshold.
func (d *document) addRiskSection(snap *report.Snapshot) {
	findings := report.AssessRisks(snap)
	overall := report.OverallRisk(findings)

	d.sectionTitle("Risk Assessment")
	d.drawRiskMeter(overall)

	for _, f := range findings {
		d.drawFindingCard(f)
	}

	if overall.Score > 40 {
		d.ensureSpace(20)
		d.pdf.SetFont("Helvetica", "B", 10)
		d.setText(colorText)
		d.pdf.CellFormat(contentWidth, 6, "Recommended Actions", "", 1, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.MultiCell(contentWidth, 5, report.RiskActionText(findings), "", "L", false)
		d.pdf.Ln(2)
	}
}

// drawFindingCard draws one risk finding as a card with a colored edge bar.
func (d *document) drawFindingCard(f report.RiskFinding) {
	const cardH = 14.0
	d.ensureSpace(cardH + 3)
	y := d.pdf.GetY()

	c := colorRiskLow
	switch f.Level {
	case report.RiskHigh:
		c = colorRiskHigh
	case report.RiskMedium:
		c = colorRiskMed
	}

	d.setFill(colorTileBg)
	d.pdf.Rect(marginLeft, y, contentWidth, cardH, "F")
	d.setFill(c)
	d.pdf.Rect(marginLeft, y, 1.5, cardH, "F")

	d.pdf.SetFont("Helvetica", "B", 10)
	d.setText(c)
	d.pdf.SetXY(marginLeft+4, y+2)
	d.pdf.CellFormat(contentWidth-8, 5, f.Title, "", 1, "L", false, 0, "")

	d.pdf.SetFont("Helvetica", "", 8.5)
	d.setText(colorText)
	d.pdf.SetX(marginLeft + 4)
	d.pdf.CellFormat(contentWidth-8, 5, f.Description, "", 1, "L", false, 0, "")

	d.pdf.SetY(y + cardH + 3)
}

// addRecommendations draws the recommendation cards. Nothing is drawn when
// there are no recommendations.
func (d *document) addRecommendations(recs []report.Recommendation) {
	if len(recs) == 0 {
		return
	}

	d.sectionTitle("Recommendations")

	for _, rec := range recs {
		const cardH = 15.0
		d.ensureSpace(cardH + 3)
		y := d.pdf.GetY()

		c := colorRiskLow
		switch rec.Priority {
		case report.PriorityHigh:
			c = colorRiskHigh
		case report.PriorityMedium:
			c = colorRiskMed
		}

		d.setFill(colorTileBg)
		d.pdf.Rect(marginLeft, y, contentWidth, cardH, "F")
		d.setFill(c)
		d.pdf.Rect(marginLeft, y, 1.5, cardH, "F")

		d.pdf.SetFont("Helvetica", "B", 10)
		d.setText(colorText)
		d.pdf.SetXY(marginLeft+4, y+2)
		d.pdf.CellFormat(contentWidth-8, 5, rec.Title, "", 1, "L", false, 0, "")

		d.pdf.SetFont("Helvetica", "", 8.5)
		d.setText(colorMuted)
		d.pdf.SetX(marginLeft + 4)
		d.pdf.CellFormat(contentWidth-8, 5, rec.Description, "", 1, "L", false, 0, "")

		d.pdf.SetY(y + cardH + 3)
	}
}
