package exports

import (
	"testing"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

func TestStudentsWorkbookRoundTrip(t *testing.T) {
	students := []*models.Student{
		{AdmissionNumber: "ADM001", FirstName: "Asha", LastName: "Rao", Grade: "5", Section: "A", RollNumber: 12, GuardianName: "R Rao", GuardianPhone: "9876543210", FeeCategory: "General"},
		{AdmissionNumber: "ADM002", FirstName: "Vikram", LastName: "Shah", Grade: "7", Section: "B", RollNumber: 4},
	}

	f, err := StudentsWorkbook(students)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	parsed, skipped, err := ParseStudentsWorkbook(buf)
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(parsed) != len(students) {
		t.Fatalf("parsed %d students, want %d", len(parsed), len(students))
	}

	for i, want := range students {
		got := parsed[i]
		if got.AdmissionNumber != want.AdmissionNumber ||
			got.FirstName != want.FirstName ||
			got.LastName != want.LastName ||
			got.Grade != want.Grade ||
			got.Section != want.Section ||
			got.RollNumber != want.RollNumber {
			t.Errorf("row %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestParseStudentRowDefaultsAndSkips(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		ok   bool
	}{
		{"complete row", []string{"ADM010", "Meena", "Iyer", "3", "B", "7"}, true},
		{"missing section defaults", []string{"ADM011", "Ravi", "", "4", "", ""}, true},
		{"missing admission number", []string{"", "Ravi", "", "4", "A", ""}, false},
		{"missing grade", []string{"ADM012", "Ravi", "", "", "A", ""}, false},
		{"bad roll number", []string{"ADM013", "Ravi", "", "4", "A", "abc"}, false},
		{"empty row", []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := parseStudentRow(tt.row)
			if ok != tt.ok {
				t.Fatalf("parseStudentRow ok = %v, want %v", ok, tt.ok)
			}
			if ok && s.Section == "" {
				t.Error("section not defaulted")
			}
		})
	}

	s, ok := parseStudentRow([]string{"ADM011", "Ravi", "", "4", "", ""})
	if !ok || s.Section != "A" {
		t.Errorf("missing section should default to A, got %q", s.Section)
	}
}

func TestParseStudentsWorkbookCountsSkipped(t *testing.T) {
	f, err := StudentsWorkbook([]*models.Student{
		{AdmissionNumber: "ADM020", FirstName: "Kiran", Grade: "6", Section: "A"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Append a malformed row with no admission number.
	f.SetCellValue("Students", "B3", "Nameless")
	f.SetCellValue("Students", "D3", "6")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	parsed, skipped, err := ParseStudentsWorkbook(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != 1 || skipped != 1 {
		t.Errorf("parsed=%d skipped=%d, want 1 and 1", len(parsed), skipped)
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1300, "One Thousand Three Hundred Only"},
		{2000.50, "Two Thousand Only"},
	}
	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%.2f) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
