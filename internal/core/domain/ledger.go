package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates whether a ledger entry is a Debit or a Credit.
// The wire values match the accounting API contract.
type MovementType string

const (
	Debit  MovementType = "DB"
	Credit MovementType = "CR"
)

// LedgerEntry is one side of a double-entry posting sent to the external
// accounting service. Entries are created, never updated or deleted.
type LedgerEntry struct {
	Description  string          `json:"description"`
	AccountID    int64           `json:"accountId"`
	MovementType MovementType    `json:"movementType"` // DB or CR
	Amount       decimal.Decimal `json:"amount"`       // Positive
	EntryDate    time.Time       `json:"entryDate"`
}
