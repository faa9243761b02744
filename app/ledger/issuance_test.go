package ledger

import (
	"errors"
	"testing"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

func duesByID(dues ...*models.FeeDue) map[int64]*models.FeeDue {
	m := make(map[int64]*models.FeeDue, len(dues))
	for _, d := range dues {
		m[d.ID] = d
	}
	return m
}

func TestValidateLines(t *testing.T) {
	dues := duesByID(
		&models.FeeDue{ID: 1, StudentID: 10, Amount: 800, AmountPaid: 0, Status: models.DueStatusDue},
		&models.FeeDue{ID: 2, StudentID: 10, Amount: 500, AmountPaid: 500, Status: models.DueStatusPaid},
		&models.FeeDue{ID: 3, StudentID: 99, Amount: 300, AmountPaid: 0, Status: models.DueStatusDue},
	)

	tests := []struct {
		name    string
		lines   []Line
		wantErr bool
	}{
		{"valid full payment", []Line{{FeeDueID: 1, Amount: 800}}, false},
		{"valid partial payment", []Line{{FeeDueID: 1, Amount: 100}}, false},
		{"empty lines", nil, true},
		{"unknown due", []Line{{FeeDueID: 42, Amount: 10}}, true},
		{"settled due", []Line{{FeeDueID: 2, Amount: 10}}, true},
		{"other student's due", []Line{{FeeDueID: 3, Amount: 10}}, true},
		{"zero amount", []Line{{FeeDueID: 1, Amount: 0}}, true},
		{"negative amount", []Line{{FeeDueID: 1, Amount: -5}}, true},
		{"overpayment", []Line{{FeeDueID: 1, Amount: 801}}, true},
		{"duplicate due", []Line{{FeeDueID: 1, Amount: 100}, {FeeDueID: 1, Amount: 100}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLines(10, dues, tt.lines)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLines() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLinesEmptyReturnsErrNoLines(t *testing.T) {
	if err := ValidateLines(1, nil, nil); !errors.Is(err, ErrNoLines) {
		t.Errorf("expected ErrNoLines, got %v", err)
	}
}

func TestIssuanceAcrossTwoDues(t *testing.T) {
	// A receipt selecting two fully unpaid dues settles both and totals their sum.
	due1 := &models.FeeDue{ID: 1, StudentID: 10, Amount: 800, Status: models.DueStatusDue}
	due2 := &models.FeeDue{ID: 2, StudentID: 10, Amount: 500, Status: models.DueStatusDue}
	dues := duesByID(due1, due2)
	lines := []Line{{FeeDueID: 1, Amount: 800}, {FeeDueID: 2, Amount: 500}}

	if err := ValidateLines(10, dues, lines); err != nil {
		t.Fatal(err)
	}
	if total := TotalAmount(lines); total != 1300 {
		t.Errorf("TotalAmount = %.2f, want 1300", total)
	}
	for _, line := range lines {
		if err := ApplyPayment(dues[line.FeeDueID], line.Amount); err != nil {
			t.Fatal(err)
		}
	}
	if due1.Status != models.DueStatusPaid || due2.Status != models.DueStatusPaid {
		t.Errorf("both dues should be paid, got %s and %s", due1.Status, due2.Status)
	}
}

func TestReceiptNumber(t *testing.T) {
	tests := []struct {
		prefix, grade, section string
		seq                    int64
		want                   string
	}{
		{"REC", "5", "A", 1, "REC5A0001"},
		{"REC", "10", "B", 42, "REC10B0042"},
		{"INV", "5", "A", 12345, "INV5A12345"},
	}
	for _, tt := range tests {
		if got := ReceiptNumber(tt.prefix, tt.grade, tt.section, tt.seq); got != tt.want {
			t.Errorf("ReceiptNumber(%q,%q,%q,%d) = %q, want %q",
				tt.prefix, tt.grade, tt.section, tt.seq, got, tt.want)
		}
	}
}
