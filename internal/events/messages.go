package events

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types, appended to the routing prefix to build the routing key.
const (
	TransactionRecorded  = "transaction.recorded"
	TransactionDiscarded = "transaction.discarded"
)

// LedgerEvent is published after a ledger entry is stored or removed.
// Discard events only carry the transaction id.
type LedgerEvent struct {
	EventID       string           `json:"eventID"`
	Type          string           `json:"type"`
	TransactionID int64            `json:"transactionID"`
	Kind          string           `json:"kind,omitempty"`
	Title         string           `json:"title,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// NewRecordedEvent builds the event for a stored transaction
func NewRecordedEvent(txn domain.Transaction) *LedgerEvent {
	amount := txn.Amount
	date := txn.Date
	return &LedgerEvent{
		EventID:       uuid.NewString(),
		Type:          TransactionRecorded,
		TransactionID: txn.ID,
		Kind:          string(txn.Kind),
		Title:         txn.Title,
		Amount:        &amount,
		Date:          &date,
		Timestamp:     time.Now().UTC(),
	}
}

// NewDiscardedEvent builds the event for a deleted transaction
func NewDiscardedEvent(id int64) *LedgerEvent {
	return &LedgerEvent{
		EventID:       uuid.NewString(),
		Type:          TransactionDiscarded,
		TransactionID: id,
		Timestamp:     time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON creates a message from JSON bytes
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
