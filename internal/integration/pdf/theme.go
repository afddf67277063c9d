// Package pdf renders product expiry reports as paginated PDF documents.
package pdf

import "github.com/expire-tracker/backend/internal/domain/entity"

// rgb is a 24-bit color used for fills, strokes and text.
type rgb struct {
	r, g, b int
}

// Report palette. Status colors match the web dashboard.
var (
	colorPrimary   = rgb{41, 98, 255}   // header band, accents
	colorHeaderBg  = rgb{26, 35, 126}   // table header
	colorText      = rgb{33, 33, 33}    // body text
	colorMuted     = rgb{117, 117, 117} // secondary text
	colorTileBg    = rgb{245, 247, 250} // KPI tile background
	colorRowAlt    = rgb{248, 249, 251} // alternating table rows
	colorRule      = rgb{224, 224, 224} // separators
	colorWhite     = rgb{255, 255, 255}
	colorFresh     = rgb{67, 160, 71}  // green
	colorExpiring  = rgb{251, 140, 0}  // orange
	colorExpired   = rgb{229, 57, 53}  // red
	colorUnknown   = rgb{158, 158, 158}
	colorRiskLow   = rgb{67, 160, 71}
	colorRiskMed   = rgb{251, 140, 0}
	colorRiskHigh  = rgb{229, 57, 53}
	colorMeterRail = rgb{232, 234, 237}
)

// statusColor maps a persisted product status to its display color.
func statusColor(status entity.ProductStatus) rgb {
	switch status {
	case entity.ProductStatusFresh:
		return colorFresh
	case entity.ProductStatusExpiringSoon:
		return colorExpiring
	case entity.ProductStatusExpired:
		return colorExpired
	default:
		return colorUnknown
	}
}

// riskColor maps a per-product risk rating to its display color.
func riskColor(level string) rgb {
	switch level {
	case "Critical", "High":
		return colorRiskHigh
	case "Medium":
		return colorRiskMed
	default:
		return colorRiskLow
	}
}
