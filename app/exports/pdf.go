package exports

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/divan/num2words"
	"github.com/jung-kurt/gofpdf"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// AmountInWords spells out the whole-currency part of an amount for the
// receipt footer, e.g. 1300 -> "One Thousand Three Hundred Only".
func AmountInWords(amount float64) string {
	whole := int(math.Floor(amount))
	words := num2words.ConvertAnd(whole)
	return strings.Title(words) + " Only"
}

// ReceiptPDF renders a printable receipt: school header from settings, the
// allocation lines, the total and the amount in words.
func ReceiptPDF(settings *models.SchoolSettings, student *models.Student, receipt *models.Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt "+receipt.ReceiptNumber, false)
	pdf.AddPage()

	// School header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, settings.SchoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if settings.Address != "" {
		pdf.CellFormat(0, 5, settings.Address, "", 1, "C", false, 0, "")
	}
	contact := settings.Phone
	if settings.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += settings.Email
	}
	if contact != "" {
		pdf.CellFormat(0, 5, contact, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "FEE RECEIPT", "TB", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Receipt and student details
	pdf.SetFont("Helvetica", "", 10)
	left := [][2]string{
		{"Receipt No", receipt.ReceiptNumber},
		{"Date", receipt.Date.Format("02 Jan 2006")},
		{"Payment Method", string(receipt.PaymentMethod)},
	}
	right := [][2]string{
		{"Student", student.FullName()},
		{"Admission No", student.AdmissionNumber},
		{"Class", student.Grade + "-" + student.Section},
	}
	for i := range left {
		pdf.CellFormat(25, 6, left[i][0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, left[i][1], "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, right[i][0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, right[i][1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line items
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Period", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, item := range receipt.Items {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, item.Period, "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%s %.2f", settings.CurrencySymbol, item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(145, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %.2f", settings.CurrencySymbol, receipt.TotalAmount), "1", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Amount in words: "+AmountInWords(receipt.TotalAmount), "", 1, "L", false, 0, "")

	if receipt.Remarks != nil && *receipt.Remarks != "" {
		pdf.CellFormat(0, 6, "Remarks: "+*receipt.Remarks, "", 1, "L", false, 0, "")
	}

	if settings.FooterText != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, settings.FooterText, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
