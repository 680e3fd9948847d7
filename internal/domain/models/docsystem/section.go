package docsystem

import (
	"time"
)

// Section is a named grouping of documents within a project or library
// container. Weld logs and welds are flat and never own sections.
type Section struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	// Exactly one of ProjectID / LibraryID is set
	ProjectID *string `json:"project_id,omitempty" db:"project_id"`
	LibraryID *string `json:"library_id,omitempty" db:"library_id"`

	Order  int64  `json:"order" db:"section_order"`
	Status Status `json:"status" db:"status"`

	ImportedFrom *string    `json:"imported_from,omitempty" db:"imported_from"`
	ImportedAt   *time.Time `json:"imported_at,omitempty" db:"imported_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	UpdatedBy string    `json:"updated_by" db:"updated_by"`
}
