package docsystem

import (
	"time"
)

// Status is the soft-delete flag carried by documents and sections.
// Rows are never physically removed by normal operations.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// ProcessingState tracks asset availability for a document.
// Imported documents are created directly in StateCompleted because their
// assets are copied before the metadata row exists.
type ProcessingState string

const (
	StateUploading ProcessingState = "uploading"
	StatePending   ProcessingState = "pending"
	StateCompleted ProcessingState = "completed"
)

// Document represents one user-visible file scoped to its owning container.
// Exactly the scoping keys required by the destination type are set; the
// others are NULL (e.g. a weld log document carries WeldLogID and ProjectID,
// never LibraryID).
type Document struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	FileType string `json:"file_type" db:"file_type"`
	FileSize int64  `json:"file_size" db:"file_size"`

	// SectionID is always NULL for weld log / weld documents (flat containers)
	SectionID *string `json:"section_id" db:"section_id"`

	ProjectID *string `json:"project_id,omitempty" db:"project_id"`
	LibraryID *string `json:"library_id,omitempty" db:"library_id"`
	WeldLogID *string `json:"weld_log_id,omitempty" db:"weld_log_id"`
	WeldID    *string `json:"weld_id,omitempty" db:"weld_id"`

	StorageRef      string `json:"storage_ref" db:"storage_ref"`
	ThumbStorageRef string `json:"thumb_storage_ref,omitempty" db:"thumb_storage_ref"`

	// Order is the position within the container scope. Only relative order
	// is meaningful; values are spaced so rows can be moved between
	// neighbors without renumbering.
	Order int64 `json:"order" db:"doc_order"`

	Status          Status          `json:"status" db:"status"`
	ProcessingState ProcessingState `json:"processing_state" db:"processing_state"`

	// Provenance, set only on imported documents
	ImportedFrom *string    `json:"imported_from,omitempty" db:"imported_from"`
	ImportedAt   *time.Time `json:"imported_at,omitempty" db:"imported_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	CreatedBy string    `json:"created_by" db:"created_by"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	UpdatedBy string    `json:"updated_by" db:"updated_by"`
}
