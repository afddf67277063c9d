package pdf

import (
	"fmt"
	"time"

	"github.com/expire-tracker/backend/internal/application/usecase/report"
	"github.com/expire-tracker/backend/internal/domain/entity"
)

// Product table column widths, summing to contentWidth.
var tableColumns = []struct {
	title string
	width float64
	align string
}{
	{"#", 8, "C"},
	{"Product Name", 46, "L"},
	{"Category", 32, "L"},
	{"Barcode", 28, "L"},
	{"Expiry Date", 24, "C"},
	{"Status", 24, "C"},
	{"Risk", 18, "C"},
}

const tableRowH = 7.0

// addProductTable draws the product listing. Critical reports keep only
// expired and expiring-soon rows; the header row repeats on every page.
func (d *document) addProductTable(products []*entity.ProductWithCategory, reportType report.ReportType, now time.Time) {
	rows := products
	if reportType == report.ReportTypeCritical {
		rows = make([]*entity.ProductWithCategory, 0, len(products))
		for _, p := range products {
			if p.Product.Status == entity.ProductStatusExpired || p.Product.Status == entity.ProductStatusExpiringSoon {
				rows = append(rows, p)
			}
		}
	}

	title := "Product Details"
	if reportType == report.ReportTypeCritical {
		title = "Critical Products"
	}
	d.sectionTitle(title)

	if len(rows) == 0 {
		d.pdf.SetFont("Helvetica", "I", 9)
		d.setText(colorMuted)
		d.pdf.CellFormat(contentWidth, 6, "No products match the report criteria.", "", 1, "L", false, 0, "")
		d.pdf.Ln(2)
		return
	}

	d.drawTableHeader()

	for i, p := range rows {
		if d.pdf.GetY()+tableRowH > pageHeight-marginBottom {
			d.pdf.AddPage()
			d.drawTableHeader()
		}
		d.drawTableRow(i, p, now)
	}
	d.pdf.Ln(3)
}

func (d *document) drawTableHeader() {
	d.setFill(colorHeaderBg)
	d.setText(colorWhite)
	d.pdf.SetFont("Helvetica", "B", 8)

	d.pdf.SetX(marginLeft)
	for _, col := range tableColumns {
		d.pdf.CellFormat(col.width, tableRowH, col.title, "", 0, col.align, true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) drawTableRow(index int, p *entity.ProductWithCategory, now time.Time) {
	y := d.pdf.GetY()

	if index%2 == 1 {
		d.setFill(colorRowAlt)
		d.pdf.Rect(marginLeft, y, contentWidth, tableRowH, "F")
	}

	// Status color bar on the row's left edge.
	d.setFill(statusColor(p.Product.Status))
	d.pdf.Rect(marginLeft, y, 1.2, tableRowH, "F")

	expiry := "-"
	if !p.Product.ExpiryDate.IsZero() {
		expiry = p.Product.ExpiryDate.Format("2006-01-02")
	}
	barcode := p.Product.Barcode
	if barcode == "" {
		barcode = "-"
	}
	risk := report.ProductRiskLevel(p.Product, now)

	cells := []string{
		fmt.Sprintf("%d", index+1),
		truncate(p.Product.Name, 30),
		truncate(p.CategoryName(), 20),
		truncate(barcode, 18),
		expiry,
		string(p.Product.Status),
		risk,
	}

	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.SetXY(marginLeft, y)
	for i, col := range tableColumns {
		switch col.title {
		case "Status":
			c := statusColor(p.Product.Status)
			d.setText(c)
		case "Risk":
			c := riskColor(risk)
			d.setText(c)
		default:
			d.setText(colorText)
		}
		d.pdf.CellFormat(col.width, tableRowH, cells[i], "", 0, col.align, false, 0, "")
	}
	d.pdf.Ln(-1)
}
