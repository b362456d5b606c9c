package fees

import (
	"fmt"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/paylinkbr/paylink-core/pkg/errors"
)

// InstallmentCount is the fixed size of an interest schedule: one rate per
// installment option the payment-link checkout offers.
const InstallmentCount = 21

// Entry pairs an installment count with its monthly interest rate.
type Entry struct {
	Installments int             `json:"parcela"`
	Rate         decimal.Decimal `json:"juros"`
}

// Schedule is a seller's full per-installment interest table.
type Schedule struct {
	SellerID string  `json:"id_seller"`
	Entries  []Entry `json:"parcelas"`
}

// Validate enforces the fixed shape: exactly 21 entries, densely numbered
// 1..21 in order, every rate non-negative.
func (s *Schedule) Validate() error {
	if s == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "schedule is nil")
	}
	if len(s.Entries) != InstallmentCount {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("schedule must have exactly %d entries, got %d", InstallmentCount, len(s.Entries)))
	}
	for i, entry := range s.Entries {
		if entry.Installments != i+1 {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("entry %d has installment number %d", i, entry.Installments)).
				WithDetails(map[string]any{"index": i})
		}
		if entry.Rate.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("installment %d has a negative rate", entry.Installments))
		}
	}
	return nil
}

// DefaultSchedule builds a zero-rate schedule for a seller, the state a new
// seller starts from before the marketplace configures pass-on interest.
func DefaultSchedule(sellerID string) *Schedule {
	entries := make([]Entry, InstallmentCount)
	for i := range entries {
		entries[i] = Entry{Installments: i + 1, Rate: decimal.Zero}
	}
	return &Schedule{SellerID: sellerID, Entries: entries}
}
