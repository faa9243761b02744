package exports

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/ledger"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

var studentHeaders = []string{
	"Admission Number", "First Name", "Last Name", "Grade", "Section",
	"Roll Number", "Guardian Name", "Guardian Phone", "Fee Category",
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
}

// StudentsWorkbook builds an .xlsx listing of students, one row per student.
func StudentsWorkbook(students []*models.Student) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Students"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	writeHeaders(f, sheet, studentHeaders)
	for i, s := range students {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.AdmissionNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.FirstName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.LastName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.Grade)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.Section)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.RollNumber)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), s.GuardianName)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), s.GuardianPhone)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), s.FeeCategory)
	}
	return f, nil
}

// ParseStudentsWorkbook reads students back from an .xlsx upload. Import is
// best-effort: rows missing an admission number, name or grade are skipped
// and counted, not reported individually. A missing section defaults to "A".
func ParseStudentsWorkbook(r io.Reader) ([]*models.Student, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("could not read workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return []*models.Student{}, 0, nil
	}

	start := 0
	if isStudentHeaderRow(rows[0]) {
		start = 1
	}

	var students []*models.Student
	skipped := 0
	for _, row := range rows[start:] {
		student, ok := parseStudentRow(row)
		if !ok {
			skipped++
			continue
		}
		students = append(students, student)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, skipped, nil
}

func isStudentHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToUpper(strings.TrimSpace(row[0]))
	return strings.Contains(first, "ADMISSION")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseStudentRow(row []string) (*models.Student, bool) {
	s := &models.Student{
		AdmissionNumber: cellAt(row, 0),
		FirstName:       cellAt(row, 1),
		LastName:        cellAt(row, 2),
		Grade:           cellAt(row, 3),
		Section:         cellAt(row, 4),
		GuardianName:    cellAt(row, 6),
		GuardianPhone:   cellAt(row, 7),
		FeeCategory:     cellAt(row, 8),
	}
	if s.AdmissionNumber == "" || s.FirstName == "" || s.Grade == "" {
		return nil, false
	}
	if s.Section == "" {
		s.Section = "A"
	}
	if roll := cellAt(row, 5); roll != "" {
		n, err := strconv.Atoi(roll)
		if err != nil {
			return nil, false
		}
		s.RollNumber = n
	}
	s.IsActive = true
	return s, true
}

// DuesWorkbook builds an .xlsx listing of fee dues.
func DuesWorkbook(dues []*models.FeeDue) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Fee Dues"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	writeHeaders(f, sheet, []string{
		"Student ID", "Fee Type", "Period", "Amount", "Amount Paid", "Status", "Due Date",
	})
	for i, d := range dues {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), d.StudentID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.FeeType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), d.Period)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), d.AmountPaid)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(d.Status))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), d.DueDate.Format("2006-01-02"))
	}
	return f, nil
}

// DefaultersWorkbook builds the defaulter report as an .xlsx.
func DefaultersWorkbook(defaulters []ledger.DefaulterRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Defaulters"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	writeHeaders(f, sheet, []string{
		"Admission Number", "Student Name", "Grade", "Fee Type", "Period",
		"Amount", "Amount Paid", "Outstanding", "Status", "Due Date",
	})
	for i, d := range defaulters {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), d.AdmissionNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.StudentName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), d.Grade)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.FeeType)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), d.Period)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), d.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), d.AmountPaid)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), d.Amount-d.AmountPaid)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), string(d.Status))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), d.DueDate.Format("2006-01-02"))
	}
	return f, nil
}

// CollectionWorkbook builds the collection summary report as an .xlsx.
func CollectionWorkbook(summary []database.CollectionRow, from, to time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Collections"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Collections %s to %s",
		from.Format("2006-01-02"), to.Format("2006-01-02")))
	for i, header := range []string{"Fee Type", "Receipts", "Amount"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, header)
	}

	var total float64
	for i, row := range summary {
		r := i + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.FeeType)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Receipts)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.Amount)
		total += row.Amount
	}
	totalRow := len(summary) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), total)
	return f, nil
}
