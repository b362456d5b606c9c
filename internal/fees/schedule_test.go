package fees

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
)

func TestDefaultScheduleShape(t *testing.T) {
	schedule := DefaultSchedule("sel-1")
	if err := schedule.Validate(); err != nil {
		t.Fatalf("default schedule must validate: %v", err)
	}
	if len(schedule.Entries) != InstallmentCount {
		t.Fatalf("expected %d entries, got %d", InstallmentCount, len(schedule.Entries))
	}
	for i, entry := range schedule.Entries {
		if entry.Installments != i+1 {
			t.Fatalf("entry %d numbered %d", i, entry.Installments)
		}
		if !entry.Rate.IsZero() {
			t.Fatalf("entry %d has non-zero starting rate", i)
		}
	}
}

func TestValidateRejectsWrongLength(t *testing.T) {
	schedule := DefaultSchedule("sel-1")
	schedule.Entries = schedule.Entries[:20]
	if err := schedule.Validate(); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateRejectsSparseNumbering(t *testing.T) {
	schedule := DefaultSchedule("sel-1")
	schedule.Entries[4].Installments = 99
	if err := schedule.Validate(); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateRejectsNegativeRate(t *testing.T) {
	schedule := DefaultSchedule("sel-1")
	schedule.Entries[10].Rate = decimal.NewFromFloat(-0.5)
	if err := schedule.Validate(); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateAcceptsFractionalRates(t *testing.T) {
	schedule := DefaultSchedule("sel-1")
	schedule.Entries[1].Rate = decimal.RequireFromString("2.99")
	schedule.Entries[20].Rate = decimal.RequireFromString("14.5")
	if err := schedule.Validate(); err != nil {
		t.Fatalf("fractional rates must validate: %v", err)
	}
}
