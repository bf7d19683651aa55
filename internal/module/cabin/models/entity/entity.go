package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Cabin struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Capacity    int            `db:"capacity"`
	Description sql.NullString `db:"description"`
	IsAvailable bool           `db:"is_available"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}
