package bookings

import (
	"bytes"
	"fmt"
	"time"

	"luxadmin/models"

	"github.com/phpdave11/gofpdf"
)

// buildRateCardPDF lays out the rate cards as a landscape table, one row
// per tour.
func buildRateCardPDF(prices []models.BookingPrice, issued time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "LuxuryEscape Rate Card", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 8, "Issued "+issued.Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Tour", "Type", "Solo", "Solo Premium", "Twin Sharing", "3 Star", "4 Star", "5 Star"}
	widths := []float64{75, 28, 22, 28, 28, 22, 22, 22}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range prices {
		title := p.TourTitle
		if title == "" {
			title = p.TourID
		}
		cells := []string{
			title,
			p.AdventureType,
			money(p.SoloPrice),
			money(p.SoloPremiumPrice),
			money(p.TwinSharingPrice),
			money(p.ThreeStarPrice),
			money(p.FourStarPrice),
			money(p.FiveStarPrice),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 8, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(prices) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 10, "No booking prices configured.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("$%.0f", v)
}
