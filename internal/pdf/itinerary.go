// Package pdf renders a trip view into a printable itinerary document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/dto"
	"github.com/jung-kurt/gofpdf"
)

// Render produces an A4 itinerary document for the given trip view.
func Render(view dto.TripResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(16, 42, 67)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 42, 67)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Name", view.Name)
	row("Start date", view.StartDate.String())
	row("Nights", fmt.Sprintf("%d", view.Nights))
	row("Days", fmt.Sprintf("%d", len(view.Days)))
	pdf.Ln(4)

	for i, day := range view.Days {
		sectionHeader(fmt.Sprintf("Day %d - %s", i+1, day.Date.String()))
		row("Hotel", fmt.Sprintf("#%d", day.HotelID))
		row("Transfers", idList(day.TransferIDs))
		row("Activities", idList(day.ActivityIDs))
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func idList(ids []uint) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}
