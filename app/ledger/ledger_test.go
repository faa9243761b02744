package ledger

import (
	"testing"
	"time"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

var may2025 = time.Date(2025, time.May, 17, 10, 30, 0, 0, time.UTC)

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		freq models.FeeFrequency
		want string
	}{
		{models.FrequencyMonthly, "May 2025"},
		{models.FrequencyQuarterly, "2025"},
		{models.FrequencyAnnual, "2025"},
		{models.FrequencyOneTime, "2025"},
	}
	for _, tt := range tests {
		if got := PeriodLabel(tt.freq, may2025); got != tt.want {
			t.Errorf("PeriodLabel(%s) = %q, want %q", tt.freq, got, tt.want)
		}
	}
}

func TestProjectDueDate(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		dueDay int
		want   time.Time
	}{
		{"normal day", may2025, 10, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{"clamped to month length", time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), 31,
			time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{"leap february", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), 30,
			time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"zero falls back to now", may2025, 0, may2025},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectDueDate(tt.now, tt.dueDay); !got.Equal(tt.want) {
				t.Errorf("ProjectDueDate(%v, %d) = %v, want %v", tt.now, tt.dueDay, got, tt.want)
			}
		})
	}
}

func TestGenerateDues(t *testing.T) {
	student := &models.Student{ID: 7, Grade: "5"}
	items := []*models.FeeStructureItem{
		{Grade: "5", FeeType: "Tuition", Amount: 2000, Frequency: models.FrequencyMonthly, DueDay: 10, IsActive: true},
		{Grade: "5", FeeType: "Library", Amount: 500, Frequency: models.FrequencyAnnual, DueDay: 15, IsActive: true},
		{Grade: "5", FeeType: "Lab", Amount: 300, Frequency: models.FrequencyMonthly, DueDay: 5, IsActive: false},
	}

	dues := GenerateDues(student, items, nil, may2025)
	if len(dues) != 2 {
		t.Fatalf("expected 2 dues (inactive item skipped), got %d", len(dues))
	}

	tuition := dues[0]
	if tuition.FeeType != "Tuition" || tuition.Amount != 2000 {
		t.Errorf("unexpected first due: %+v", tuition)
	}
	if tuition.Period != "May 2025" {
		t.Errorf("monthly period = %q, want %q", tuition.Period, "May 2025")
	}
	if tuition.Description != "Tuition Fee (May 2025)" {
		t.Errorf("description = %q", tuition.Description)
	}

	library := dues[1]
	if library.Period != "2025" {
		t.Errorf("annual period = %q, want %q", library.Period, "2025")
	}

	for _, d := range dues {
		if d.AmountPaid != 0 || d.Status != models.DueStatusDue {
			t.Errorf("new due must start unpaid with status due: %+v", d)
		}
		if d.StudentID != student.ID {
			t.Errorf("due not owned by student: %+v", d)
		}
	}
}

func TestGenerateDuesWithTransportRoute(t *testing.T) {
	student := &models.Student{ID: 3, Grade: "7"}
	route := &models.TransportationRoute{ID: 2, Name: "North Loop", MonthlyFare: 750, IsActive: true}

	dues := GenerateDues(student, nil, route, may2025)
	if len(dues) != 1 {
		t.Fatalf("expected 1 transport due, got %d", len(dues))
	}
	d := dues[0]
	if d.FeeType != TransportFeeType || d.Amount != 750 {
		t.Errorf("unexpected transport due: %+v", d)
	}
	if d.Period != "May 2025" {
		t.Errorf("transport period = %q, want monthly label", d.Period)
	}

	// An inactive route contributes nothing.
	route.IsActive = false
	if dues := GenerateDues(student, nil, route, may2025); len(dues) != 0 {
		t.Errorf("inactive route must not generate dues, got %d", len(dues))
	}
}

func TestApplyPaymentFull(t *testing.T) {
	due := &models.FeeDue{Amount: 2000, AmountPaid: 0, Status: models.DueStatusDue}
	if err := ApplyPayment(due, 2000); err != nil {
		t.Fatal(err)
	}
	if due.AmountPaid != 2000 || due.Status != models.DueStatusPaid {
		t.Errorf("after full payment: paid=%.2f status=%s", due.AmountPaid, due.Status)
	}
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	due := &models.FeeDue{Amount: 2000, AmountPaid: 0, Status: models.DueStatusDue}

	if err := ApplyPayment(due, 800); err != nil {
		t.Fatal(err)
	}
	if due.AmountPaid != 800 || due.Status != models.DueStatusPartial {
		t.Errorf("after first payment: paid=%.2f status=%s", due.AmountPaid, due.Status)
	}

	if err := ApplyPayment(due, 1200); err != nil {
		t.Fatal(err)
	}
	if due.AmountPaid != 2000 || due.Status != models.DueStatusPaid {
		t.Errorf("after second payment: paid=%.2f status=%s", due.AmountPaid, due.Status)
	}
}

func TestApplyPaymentZeroIsNoOp(t *testing.T) {
	due := &models.FeeDue{Amount: 500, AmountPaid: 100, Status: models.DueStatusPartial}
	if err := ApplyPayment(due, 0); err != nil {
		t.Fatal(err)
	}
	if due.AmountPaid != 100 || due.Status != models.DueStatusPartial {
		t.Errorf("zero payment changed the due: %+v", due)
	}
}

func TestApplyPaymentRejectsNegative(t *testing.T) {
	due := &models.FeeDue{Amount: 500, AmountPaid: 100, Status: models.DueStatusPartial}
	if err := ApplyPayment(due, -50); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if due.AmountPaid != 100 {
		t.Errorf("amountPaid changed on rejected payment: %.2f", due.AmountPaid)
	}
}

func TestApplyPaymentMonotonic(t *testing.T) {
	due := &models.FeeDue{Amount: 1000, Status: models.DueStatusDue}
	prev := due.AmountPaid
	for _, p := range []float64{100, 0, 250, 0, 650} {
		if err := ApplyPayment(due, p); err != nil {
			t.Fatal(err)
		}
		if due.AmountPaid < prev {
			t.Fatalf("amountPaid decreased from %.2f to %.2f", prev, due.AmountPaid)
		}
		prev = due.AmountPaid
	}
	if due.AmountPaid != 1000 || due.Status != models.DueStatusPaid {
		t.Errorf("final state: paid=%.2f status=%s", due.AmountPaid, due.Status)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		amount, paid float64
		want         models.DueStatus
	}{
		{2000, 0, models.DueStatusDue},
		{2000, 1, models.DueStatusPartial},
		{2000, 1999.99, models.DueStatusPartial},
		{2000, 2000, models.DueStatusPaid},
		{2000, 2500, models.DueStatusPaid},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.amount, tt.paid); got != tt.want {
			t.Errorf("StatusFor(%.2f, %.2f) = %s, want %s", tt.amount, tt.paid, got, tt.want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	past := may2025.AddDate(0, 0, -3)
	future := may2025.AddDate(0, 0, 3)

	tests := []struct {
		name string
		due  models.FeeDue
		want bool
	}{
		{"due past date", models.FeeDue{Status: models.DueStatusDue, DueDate: past}, true},
		{"partial past date", models.FeeDue{Status: models.DueStatusPartial, DueDate: past}, true},
		{"due future date", models.FeeDue{Status: models.DueStatusDue, DueDate: future}, false},
		{"paid never overdue", models.FeeDue{Status: models.DueStatusPaid, DueDate: past}, false},
		{"already overdue stays put", models.FeeDue{Status: models.DueStatusOverdue, DueDate: past}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(&tt.due, may2025); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaulterStatuses(t *testing.T) {
	tests := []struct {
		status models.DueStatus
		want   bool
	}{
		{models.DueStatusDue, true},
		{models.DueStatusOverdue, true},
		{models.DueStatusPartial, false},
		{models.DueStatusPaid, false},
	}
	for _, tt := range tests {
		if got := IsDefaulterStatus(tt.status); got != tt.want {
			t.Errorf("IsDefaulterStatus(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
