package bookings

import (
	"bytes"
	"testing"
	"time"

	"luxadmin/models"
)

func TestBuildRateCardPDF(t *testing.T) {
	prices := []models.BookingPrice{
		{TourTitle: "Everest Base Camp Trek", AdventureType: "trekking", SoloPrice: 2100, TwinSharingPrice: 1850},
		{TourID: "t77", SoloPrice: 990, TwinSharingPrice: 880, FiveStarPrice: 2400},
	}
	pdf, err := buildRateCardPDF(prices, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:8])
	}
}

func TestBuildRateCardPDFEmpty(t *testing.T) {
	pdf, err := buildRateCardPDF(nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty rate card produced no document")
	}
}
