package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionProcessed is emitted once a bank service has run its business rule.
type TransactionProcessed struct {
	EventID       string          `json:"event_id"`
	TransactionID string          `json:"transaction_id"`
	ServiceType   string          `json:"service_type"`
	Client        string          `json:"client"`
	Amount        decimal.Decimal `json:"amount"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
	Succeeded     bool            `json:"succeeded"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
