package usecase

import (
	"bytes"
	"fmt"

	"tour-booking/internal/data/entity"

	"github.com/jung-kurt/gofpdf"
)

// BuildVoucherPDF renders a booking voucher and returns raw bytes, so
// the handler can stream it without touching the filesystem.
func BuildVoucherPDF(booking *entity.Booking, schedule *entity.TourSchedule, tour *entity.Tour, user *entity.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(16, 83, 66)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Tour Booking", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking Voucher", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(16, 83, 66)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking Details")
	row("Order ID", booking.OrderID)
	row("Status", string(booking.Status))
	row("Booked On", booking.CreatedAt.Format("02 Jan 2006, 15:04"))
	pdf.Ln(4)

	sectionHeader("Traveler")
	row("Name", user.Username)
	row("Email", user.Email)
	if user.Phone != nil {
		row("Phone", *user.Phone)
	}
	pdf.Ln(4)

	sectionHeader("Tour")
	row("Tour", tour.Name)
	if tour.Location != nil {
		row("Location", *tour.Location)
	}
	row("Departure", schedule.DepartureDate.Format("02 Jan 2006 (Mon)"))
	row("Return", schedule.ReturnDate.Format("02 Jan 2006 (Mon)"))
	row("Duration", fmt.Sprintf("%d days", tour.DurationDays))
	pdf.Ln(4)

	sectionHeader("Party")
	row("Adults", fmt.Sprintf("%d", booking.NumAdults))
	row("Children", fmt.Sprintf("%d", booking.NumChildren))
	row("Infants", fmt.Sprintf("%d", booking.NumInfants))
	pdf.Ln(4)

	sectionHeader("Payment")
	pdf.SetFillColor(222, 235, 230)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%.2f", booking.TotalPrice), "", 1, "L", true, 0, "")
	pdf.Ln(4)

	// Footer
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Present this voucher together with a valid ID at the departure point",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
