package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a record for an object already uploaded to S3. Key identifies the
// stored object; deleting the record requires deleting the object first.
type Image struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	URL         string    `db:"url" json:"url"`
	Key         string    `db:"key" json:"key"`
	UploadedBy  uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
