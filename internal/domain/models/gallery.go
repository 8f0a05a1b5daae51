package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a singleton: at most one row exists system-wide. Image order is
// kept in the gallery_images join table and carried here already sorted.
type Gallery struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	Images        []Image       `json:"images"`
	LastUpdatedBy uuid.NullUUID `db:"last_updated_by" json:"last_updated_by,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}
