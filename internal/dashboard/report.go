// AngelaMos | 2026
// report.go

package dashboard

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderReport lays out stats as a one-page A4 summary.
func RenderReport(stats *Stats, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; user-entered text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Talent Booking Dashboard", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6,
		"Generated "+generatedAt.UTC().Format(time.RFC1123),
		"", 1, "C", false, 0, "")
	pdf.Ln(6)

	section(pdf, "Users")
	row(pdf, "Talents", fmt.Sprintf("%d", stats.Users.Talents))
	row(pdf, "Media owners", fmt.Sprintf("%d", stats.Users.MediaOwners))
	row(pdf, "Total", fmt.Sprintf("%d", stats.Users.Total))
	pdf.Ln(4)

	section(pdf, "Bookings")
	row(pdf, "Pending", fmt.Sprintf("%d", stats.Bookings.Pending))
	row(pdf, "Confirmed", fmt.Sprintf("%d", stats.Bookings.Confirmed))
	row(pdf, "Completed", fmt.Sprintf("%d", stats.Bookings.Completed))
	row(pdf, "Cancelled", fmt.Sprintf("%d", stats.Bookings.Cancelled))
	row(pdf, "Total", fmt.Sprintf("%d", stats.Bookings.Total))
	row(pdf, "Completion rate", fmt.Sprintf("%d%%", stats.CompletionRate))
	pdf.Ln(4)

	section(pdf, "Revenue (paid bookings)")
	row(pdf, "Total", fmt.Sprintf("$%.2f", stats.Revenue.Total))
	row(pdf, "Paid bookings", fmt.Sprintf("%d", stats.Revenue.TotalBookings))
	row(pdf, "Average", fmt.Sprintf("$%.2f", stats.Revenue.Average))
	pdf.Ln(4)

	section(pdf, "Recent activity")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(15, 8, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(65, 8, "Title", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Talent", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 8, "Company", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, a := range stats.RecentActivity {
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", a.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(65, 8, tr(truncate(a.Title, 36)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, tr(a.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, tr(truncate(deref(a.TalentName), 22)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, tr(truncate(deref(a.CompanyName), 24)), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
