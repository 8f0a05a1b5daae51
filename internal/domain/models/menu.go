package models

import (
	"time"

	"github.com/google/uuid"
)

// Menu groups menu items in display order.
type Menu struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Description string     `db:"description" json:"description"`
	Image       *string    `db:"image" json:"image,omitempty"`
	Items       []MenuItem `json:"menu_items"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type MenuItem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Slug        string     `db:"slug" json:"slug"`
	Image       string     `db:"image" json:"image"`
	Price       float64    `db:"price" json:"price"`
	CategoryID  *uuid.UUID `db:"category_id" json:"category_id,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []Tag      `json:"tags"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
