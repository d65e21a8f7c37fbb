// Package model holds the domain types and the request/response payloads
// exchanged by the HTTP layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the columns every managed table has.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BaseWithUpdatedAt is Base plus the update timestamp.
type BaseWithUpdatedAt struct {
	Base
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
