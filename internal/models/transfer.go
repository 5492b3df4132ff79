package models

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	ServiceTypeTransfer ServiceType = "BankTransfer"

	// MinDestinationAccountLength is the shortest accepted destination account.
	MinDestinationAccountLength = 10
)

var (
	TransferCommission = decimal.RequireFromString("2.00")
	MaxTransferLimit   = decimal.RequireFromString("10000.00")
)

// Transfer moves money to a destination account. It charges a fixed
// commission and is cancelled when the amount exceeds MaxTransferLimit.
//
// Only NewTransfer returns a valid Transfer. The zero value has an empty id,
// client and account and skips every field invariant.
type Transfer struct {
	transaction
	destinationAccount string
}

// NewTransfer validates every field and returns a Pending transfer.
// No instance is returned when any field is invalid.
func NewTransfer(transactionID, client string, amount decimal.Decimal, destinationAccount string, opts ...Option) (*Transfer, error) {
	base, err := newTransaction(transactionID, client, amount, opts...)
	if err != nil {
		return nil, err
	}

	t := &Transfer{transaction: base}
	if err := t.SetDestinationAccount(destinationAccount); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transfer) DestinationAccount() string { return t.destinationAccount }

// SetDestinationAccount checks the length first, then that only digits are used.
func (t *Transfer) SetDestinationAccount(value string) error {
	if utf8.RuneCountInString(value) < MinDestinationAccountLength {
		return newValidationError("destinationAccount", "must have at least 10 characters")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return newValidationError("destinationAccount", "must contain only digits")
		}
	}
	t.destinationAccount = value
	return nil
}

func (t *Transfer) ServiceType() ServiceType { return ServiceTypeTransfer }

// CalculateCost is independent of the transferred amount.
func (t *Transfer) CalculateCost() decimal.Decimal {
	return BaseCommission.Add(TransferCommission)
}

// ProcessTransaction cancels transfers above MaxTransferLimit and completes
// the rest. The limit itself is allowed.
func (t *Transfer) ProcessTransaction() bool {
	if t.amount.GreaterThan(MaxTransferLimit) {
		t.status = StatusCancelled
		return false
	}

	t.MarkCompleted()
	return true
}

func (t *Transfer) String() string {
	return t.summary(t.ServiceType(), t.CalculateCost(),
		summaryLine{"Destination Account", t.destinationAccount},
	)
}

func (t *Transfer) GoString() string {
	return t.goString(t.ServiceType())
}

var _ BankService = (*Transfer)(nil)
