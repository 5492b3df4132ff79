package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for dates in transaction summaries.
const DateLayout = "02/01/2006 15:04:05"

// BaseCommission is charged on every bank service.
var BaseCommission = decimal.RequireFromString("0.50")

// ServiceType names a concrete kind of bank service.
type ServiceType string

// BankService is the contract every transaction variant satisfies.
// The common fields and their validation come from the embedded base;
// CalculateCost, ProcessTransaction and ServiceType come from the variant.
type BankService interface {
	TransactionID() string
	Client() string
	Amount() decimal.Decimal
	Date() time.Time
	Status() Status

	SetTransactionID(value string) error
	SetClient(value string) error
	SetAmount(value decimal.Decimal) error
	SetDate(value time.Time) error
	SetStatus(value Status) error
	MarkCompleted()

	// CalculateCost returns the positive fee charged for the service.
	CalculateCost() decimal.Decimal
	// ProcessTransaction applies the variant's business rule, moves the
	// status accordingly and reports whether the transaction succeeded.
	ProcessTransaction() bool
	ServiceType() ServiceType

	fmt.Stringer
}

// Option customizes construction of a transaction.
type Option func(*options)

type options struct {
	date    time.Time
	hasDate bool
	now     func() time.Time
}

// WithDate sets the transaction date instead of the current time.
func WithDate(date time.Time) Option {
	return func(o *options) {
		o.date = date
		o.hasDate = true
	}
}

// WithClock overrides the source of the default date. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// transaction holds the fields shared by all bank services. It has no
// exported constructor: variants embed it and supply the abstract operations.
type transaction struct {
	transactionID string
	client        string
	amount        decimal.Decimal
	date          time.Time
	status        Status
}

func newTransaction(transactionID, client string, amount decimal.Decimal, opts ...Option) (transaction, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	t := transaction{status: StatusPending}
	if err := t.SetTransactionID(transactionID); err != nil {
		return transaction{}, err
	}
	if err := t.SetClient(client); err != nil {
		return transaction{}, err
	}
	if err := t.SetAmount(amount); err != nil {
		return transaction{}, err
	}

	date := o.now()
	if o.hasDate {
		date = o.date
	}
	if err := t.SetDate(date); err != nil {
		return transaction{}, err
	}

	return t, nil
}

func (t *transaction) TransactionID() string { return t.transactionID }

func (t *transaction) Client() string { return t.client }

func (t *transaction) Amount() decimal.Decimal { return t.amount }

func (t *transaction) Date() time.Time { return t.date }

func (t *transaction) Status() Status { return t.status }

// SetTransactionID stores the trimmed identifier.
func (t *transaction) SetTransactionID(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return newValidationError("transactionId", "must be a non-empty text")
	}
	t.transactionID = value
	return nil
}

// SetClient stores the trimmed client name.
func (t *transaction) SetClient(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return newValidationError("client", "must be a non-empty text")
	}
	t.client = value
	return nil
}

func (t *transaction) SetAmount(value decimal.Decimal) error {
	if !value.IsPositive() {
		return newValidationError("amount", "must be a positive number greater than zero")
	}
	t.amount = value
	return nil
}

// SetAmountFloat is SetAmount for callers holding a float64.
func (t *transaction) SetAmountFloat(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return newValidationError("amount", "must be a finite number")
	}
	return t.SetAmount(decimal.NewFromFloat(value))
}

// SetDate rejects the zero time.
func (t *transaction) SetDate(value time.Time) error {
	if value.IsZero() {
		return newValidationError("date", "must be a valid date and time")
	}
	t.date = value
	return nil
}

// SetStatus accepts any known status regardless of the current one.
// Note that this lets callers move a Cancelled transaction back to Pending.
func (t *transaction) SetStatus(value Status) error {
	if !value.Valid() {
		return newValidationError("status", fmt.Sprintf("must be one of %v", validStatuses))
	}
	t.status = value
	return nil
}

func (t *transaction) MarkCompleted() {
	t.status = StatusCompleted
}

type summaryLine struct {
	label string
	value string
}

// summary renders the multi-line description shared by all variants.
// extra lines are placed between the amount and the date.
func (t *transaction) summary(kind ServiceType, cost decimal.Decimal, extra ...summaryLine) string {
	lines := []summaryLine{
		{"Transaction", t.transactionID},
		{"Type", string(kind)},
		{"Client", t.client},
		{"Amount", "$" + t.amount.StringFixed(2)},
	}
	lines = append(lines, extra...)
	lines = append(lines,
		summaryLine{"Date", t.date.Format(DateLayout)},
		summaryLine{"Status", string(t.status)},
		summaryLine{"Total Cost", "$" + cost.StringFixed(2)},
	)

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.label)
		b.WriteString(": ")
		b.WriteString(l.value)
	}
	return b.String()
}

func (t *transaction) goString(kind ServiceType) string {
	return fmt.Sprintf("%s(transactionId=%q, client=%q, amount=%s)", kind, t.transactionID, t.client, t.amount)
}
