// Package email dispatches expiry alert notifications via Resend.
package email

import (
	"fmt"
	"strings"

	"github.com/expire-tracker/backend/internal/application/adapter"
)

// alertSubject builds the notification subject line for an alert.
func alertSubject(alert adapter.ExpiryAlert) string {
	if alert.Type == adapter.AlertTypeExpired {
		return fmt.Sprintf("Product Expired: %s", alert.Product.Name)
	}
	if alert.DaysToExpiry == 1 {
		return fmt.Sprintf("Product Expiring Tomorrow: %s", alert.Product.Name)
	}
	return fmt.Sprintf("Product Expiring in %d Days: %s", alert.DaysToExpiry, alert.Product.Name)
}

// alertText builds the plain-text body for an alert.
func alertText(alert adapter.ExpiryAlert) string {
	var b strings.Builder

	if alert.Type == adapter.AlertTypeExpired {
		fmt.Fprintf(&b, "The following product has expired and should be removed from inventory:\n\n")
	} else {
		fmt.Fprintf(&b, "The following product will expire in %d day(s):\n\n", alert.DaysToExpiry)
	}

	fmt.Fprintf(&b, "Product: %s\n", alert.Product.Name)
	fmt.Fprintf(&b, "Category: %s\n", alert.CategoryName)
	fmt.Fprintf(&b, "Expiry Date: %s\n", alert.Product.ExpiryDate.Format("2006-01-02"))
	if alert.Product.Barcode != "" {
		fmt.Fprintf(&b, "Barcode: %s\n", alert.Product.Barcode)
	}

	if alert.Type == adapter.AlertTypeExpired {
		b.WriteString("\nPlease remove this product from inventory as soon as possible.\n")
	} else {
		b.WriteString("\nConsider promoting or relocating this product before it expires.\n")
	}

	return b.String()
}

// alertHTML builds the HTML body for an alert. The layout is a single card so
// it renders consistently across mail clients. When baseURL is set the footer
// links back to the inventory app.
func alertHTML(alert adapter.ExpiryAlert, baseURL string) string {
	accent := "#fb8c00"
	headline := fmt.Sprintf("Expiring in %d day(s)", alert.DaysToExpiry)
	action := "Consider promoting or relocating this product before it expires."
	if alert.Type == adapter.AlertTypeExpired {
		accent = "#e53935"
		headline = "Product Expired"
		action = "Please remove this product from inventory as soon as possible."
	}

	var rows strings.Builder
	writeRow := func(label, value string) {
		fmt.Fprintf(&rows,
			`<tr><td style="padding:4px 12px;color:#757575;">%s</td><td style="padding:4px 12px;color:#212121;font-weight:bold;">%s</td></tr>`,
			label, value)
	}
	writeRow("Product", alert.Product.Name)
	writeRow("Category", alert.CategoryName)
	writeRow("Expiry Date", alert.Product.ExpiryDate.Format("2006-01-02"))
	if alert.Product.Barcode != "" {
		writeRow("Barcode", alert.Product.Barcode)
	}

	footer := "ExpireTracker automated expiry notification"
	if baseURL != "" {
		footer = fmt.Sprintf(
			`<a href="%s/products" style="color:#1976d2;text-decoration:none;">Open inventory</a> &middot; %s`,
			baseURL, footer)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Helvetica,Arial,sans-serif;background-color:#f5f7fa;padding:24px;">
  <div style="max-width:520px;margin:0 auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:%s;color:#ffffff;padding:16px 20px;">
      <h2 style="margin:0;font-size:18px;">%s</h2>
    </div>
    <div style="padding:20px;">
      <table style="width:100%%;border-collapse:collapse;">%s</table>
      <p style="color:#424242;margin-top:16px;">%s</p>
    </div>
    <div style="padding:12px 20px;border-top:1px solid #e0e0e0;color:#9e9e9e;font-size:12px;">
      %s
    </div>
  </div>
</body>
</html>`, accent, headline, rows.String(), action, footer)
}
