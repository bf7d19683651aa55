package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Payment statuses are stored uppercase, matching the values served on
// the wire.
const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusFailed   = "FAILED"
	StatusRefunded = "REFUNDED"
)

const DefaultCurrency = "USD"

type Payment struct {
	ID            uuid.UUID      `db:"id"`
	UserID        int64          `db:"user_id"`
	BookingID     uuid.UUID      `db:"booking_id"`
	Amount        float64        `db:"amount"`
	Currency      string         `db:"currency"`
	Status        string         `db:"status"`
	TransactionID sql.NullString `db:"transaction_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}
