package pdf

import (
	"fmt"
	"math"

	"github.com/expire-tracker/backend/internal/application/usecase/report"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// addStatusChart draws a pie of the three status buckets with a legend.
// Products without an expiry date are outside the buckets and not charted.
func (d *document) addStatusChart(snap *report.Snapshot) {
	d.sectionTitle("Status Distribution")

	slices := []struct {
		label string
		value int
		color rgb
	}{
		{string(entity.ProductStatusFresh), snap.Fresh, colorFresh},
		{string(entity.ProductStatusExpiringSoon), snap.ExpiringSoon, colorExpiring},
		{string(entity.ProductStatusExpired), snap.Expired, colorExpired},
	}

	total := 0
	for _, s := range slices {
		total += s.value
	}

	const chartH = 52.0
	d.ensureSpace(chartH + 4)
	top := d.pdf.GetY()

	if total == 0 {
		d.pdf.SetFont("Helvetica", "I", 9)
		d.setText(colorMuted)
		d.pdf.CellFormat(contentWidth, 6, "No products with expiry dates to chart.", "", 1, "L", false, 0, "")
		d.pdf.Ln(2)
		return
	}

	cx := marginLeft + 32.0
	cy := top + chartH/2
	radius := 22.0

	start := -90.0
	for _, s := range slices {
		if s.value == 0 {
			continue
		}
		sweep := 360.0 * float64(s.value) / float64(total)
		d.drawPieSlice(cx, cy, radius, start, start+sweep, s.color)
		start += sweep
	}

	// Legend to the right of the pie.
	lx := cx + radius + 18
	ly := top + 8
	for _, s := range slices {
		d.setFill(s.color)
		d.pdf.Rect(lx, ly, 4, 4, "F")
		d.pdf.SetFont("Helvetica", "", 9)
		d.setText(colorText)
		d.pdf.SetXY(lx+6, ly-0.5)
		pct := float64(s.value) / float64(total) * 100
		d.pdf.CellFormat(70, 5, fmt.Sprintf("%s: %d (%.1f%%)", s.label, s.value, pct), "", 0, "L", false, 0, "")
		ly += 8
	}

	d.pdf.SetY(top + chartH + 4)
}

// drawPieSlice fills a single pie wedge between the given angles in degrees,
// measured clockwise from twelve o'clock at -90.
func (d *document) drawPieSlice(cx, cy, radius, startDeg, endDeg float64, c rgb) {
	d.setFill(c)
	d.setDraw(colorWhite)
	d.pdf.SetLineWidth(0.3)

	d.pdf.MoveTo(cx, cy)
	steps := int(math.Ceil((endDeg - startDeg) / 4.0))
	if steps < 2 {
		steps = 2
	}
	for i := 0; i <= steps; i++ {
		a := (startDeg + (endDeg-startDeg)*float64(i)/float64(steps)) * math.Pi / 180
		d.pdf.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	d.pdf.ClosePath()
	d.pdf.DrawPath("FD")
}

// addCategoryChart draws horizontal bars for the expiring-window category
// breakdown, widest bar first.
func (d *document) addCategoryChart(breakdown []report.CategoryCount) {
	d.sectionTitle("Expiring Products by Category")

	if len(breakdown) == 0 {
		d.pdf.SetFont("Helvetica", "I", 9)
		d.setText(colorMuted)
		d.pdf.CellFormat(contentWidth, 6, "No products expiring within the warning window.", "", 1, "L", false, 0, "")
		d.pdf.Ln(2)
		return
	}

	maxCount := breakdown[0].Count
	for _, b := range breakdown {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	const rowH = 8.0
	const labelW = 50.0
	barMax := contentWidth - labelW - 14

	for _, b := range breakdown {
		d.ensureSpace(rowH)
		y := d.pdf.GetY()

		d.pdf.SetFont("Helvetica", "", 8.5)
		d.setText(colorText)
		d.pdf.SetXY(marginLeft, y)
		d.pdf.CellFormat(labelW, rowH-2, truncate(b.Name, 28), "", 0, "L", false, 0, "")

		barW := barMax * float64(b.Count) / float64(maxCount)
		if barW < 1 {
			barW = 1
		}
		d.setFill(colorExpiring)
		d.pdf.Rect(marginLeft+labelW, y+1, barW, rowH-4, "F")

		d.setText(colorMuted)
		d.pdf.SetXY(marginLeft+labelW+barW+2, y)
		d.pdf.CellFormat(12, rowH-2, fmt.Sprintf("%d", b.Count), "", 0, "L", false, 0, "")

		d.pdf.SetY(y + rowH)
	}
	d.pdf.Ln(2)
}

// drawRiskMeter draws the horizontal 0-100 gauge with the overall score marker.
func (d *document) drawRiskMeter(overall report.RiskScore) {
	const meterH = 6.0
	const blockH = 20.0
	d.ensureSpace(blockH)
	y := d.pdf.GetY()

	c := colorRiskLow
	switch overall.Level {
	case report.RiskHigh:
		c = colorRiskHigh
	case report.RiskMedium:
		c = colorRiskMed
	}

	d.pdf.SetFont("Helvetica", "B", 10)
	d.setText(colorText)
	d.pdf.SetXY(marginLeft, y)
	d.pdf.CellFormat(contentWidth/2, 6, fmt.Sprintf("Overall Risk Score: %d / 100", overall.Score), "", 0, "L", false, 0, "")
	d.setText(c)
	d.pdf.CellFormat(contentWidth/2, 6, fmt.Sprintf("Level: %s", overall.Level), "", 1, "R", false, 0, "")

	railY := y + 8
	d.setFill(colorMeterRail)
	d.pdf.Rect(marginLeft, railY, contentWidth, meterH, "F")

	fillW := contentWidth * float64(overall.Score) / 100
	d.setFill(c)
	d.pdf.Rect(marginLeft, railY, fillW, meterH, "F")

	d.pdf.SetY(y + blockH)
}

// addTrendChart draws the twelve-month expiry trend as a line chart. Past
// months are drawn muted, the current month gets an emphasized marker.
func (d *document) addTrendChart(trend []report.TrendPoint) {
	d.sectionTitle("Expiry Trend (6 Months Back / 5 Ahead)")

	const chartH = 45.0
	const axisH = 6.0
	d.ensureSpace(chartH + axisH + 6)
	top := d.pdf.GetY()

	maxVal := 1
	for _, p := range trend {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	plotW := contentWidth - 8
	stepX := plotW / float64(len(trend)-1)

	pointX := func(i int) float64 { return marginLeft + 4 + float64(i)*stepX }
	pointY := func(v int) float64 { return top + chartH - (chartH-6)*float64(v)/float64(maxVal) }

	// Baseline.
	d.setDraw(colorRule)
	d.pdf.SetLineWidth(0.2)
	d.pdf.Line(marginLeft, top+chartH, marginLeft+contentWidth, top+chartH)

	// Connecting segments, then markers on top.
	d.pdf.SetLineWidth(0.5)
	for i := 1; i < len(trend); i++ {
		if trend[i].IsPast || trend[i-1].IsPast {
			d.setDraw(colorMuted)
		} else {
			d.setDraw(colorPrimary)
		}
		d.pdf.Line(pointX(i-1), pointY(trend[i-1].Value), pointX(i), pointY(trend[i].Value))
	}

	for i, p := range trend {
		r := 1.2
		c := colorPrimary
		if p.IsPast {
			c = colorMuted
		}
		if p.IsCurrent {
			r = 2.0
			c = colorExpiring
		}
		d.setFill(c)
		d.pdf.Circle(pointX(i), pointY(p.Value), r, "F")
	}

	// Month labels along the axis.
	d.pdf.SetFont("Helvetica", "", 6.5)
	d.setText(colorMuted)
	for i, p := range trend {
		d.pdf.SetXY(pointX(i)-6, top+chartH+1)
		d.pdf.CellFormat(12, axisH, p.Label, "", 0, "C", false, 0, "")
	}

	d.pdf.SetY(top + chartH + axisH + 4)
}

// truncate shortens s to max runes with a trailing ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
