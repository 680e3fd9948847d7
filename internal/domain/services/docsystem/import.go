package docsystem

import (
	"context"

	"docweld/internal/domain/models/docsystem"
)

// SourceDocument is the loosely-shaped source record an import starts from.
// Optional fields are empty; named fallbacks are applied when the
// destination row is prepared.
type SourceDocument struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	FileType        string `json:"file_type"`
	FileSize        int64  `json:"file_size"`
	StorageRef      string `json:"storage_ref"`
	ThumbStorageRef string `json:"thumb_storage_ref"`
}

// SourceSection is the source record for a section import. ID and Name are
// required; everything else is optional.
type SourceSection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ImportContext carries the additional scoping ids some destination types
// require (weld log documents also carry the owning project id; weld
// documents carry both). It is passed through unvalidated; a missing field
// surfaces later as a malformed scope.
type ImportContext struct {
	ProjectID string `json:"project_id"`
	WeldLogID string `json:"weld_log_id"`
}

// ImportDocumentRequest imports one document into a destination container
type ImportDocumentRequest struct {
	Source          SourceDocument
	TargetSectionID *string
	DestinationType docsystem.DestinationType
	DestinationID   string
	Context         ImportContext
	Actor           string
}

// ImportSectionRequest imports a section and all its member documents as one
// transactional unit
type ImportSectionRequest struct {
	Source          SourceSection
	SourceType      docsystem.DestinationType // project or library
	SourceID        string
	DestinationType docsystem.DestinationType
	DestinationID   string
	Context         ImportContext
	Actor           string
}

// ImportItemKind discriminates batch items
type ImportItemKind string

const (
	ImportItemSection  ImportItemKind = "section"
	ImportItemDocument ImportItemKind = "document"
)

// ImportItem is one entry of a heterogeneous batch. For sections, the source
// container is derived from the item's own scoping ids (project id present
// means the source is a project, otherwise a library).
type ImportItem struct {
	Kind ImportItemKind `json:"type"`

	Document *SourceDocument `json:"document,omitempty"`
	Section  *SourceSection  `json:"section,omitempty"`

	// Source container ids for section items
	ProjectID string `json:"project_id,omitempty"`
	LibraryID string `json:"library_id,omitempty"`

	// Target section for document items; TargetSectionID wins over SectionID
	TargetSectionID *string `json:"target_section_id,omitempty"`
	SectionID       *string `json:"section_id,omitempty"`
}

// ImportItemsRequest imports a heterogeneous list of sections and documents
type ImportItemsRequest struct {
	Items           []ImportItem
	DestinationType docsystem.DestinationType
	DestinationID   string
	Context         ImportContext
	Actor           string
}

// ImportedSection reports one successfully imported section
type ImportedSection struct {
	ID       string `json:"id"`
	SourceID string `json:"source_id"`
	Name     string `json:"name"`
}

// ImportedDocument reports one successfully imported document
type ImportedDocument struct {
	ID       string `json:"id"`
	SourceID string `json:"source_id"`
	Title    string `json:"title"`
}

// ImportItemError reports one failed batch item. Failures are isolated: the
// rest of the batch still runs.
type ImportItemError struct {
	Item  ImportItem `json:"item"`
	Error string     `json:"error"`
}

// ImportItemsResult aggregates per-item outcomes of a batch import
type ImportItemsResult struct {
	Sections  []ImportedSection  `json:"sections"`
	Documents []ImportedDocument `json:"documents"`
	Errors    []ImportItemError  `json:"errors"`
}

// ImportService copies documents and whole sections between containers.
// ImportDocument and ImportSection return an error on any failure; only
// ImportItems isolates per-item failures into the result.
type ImportService interface {
	// ImportDocument imports one document and returns the new document id.
	// Assets are copied before the metadata row is written; on copy failure
	// nothing is persisted.
	ImportDocument(ctx context.Context, req *ImportDocumentRequest) (string, error)

	// ImportSection imports a section plus all its member documents. All
	// metadata rows are committed together only after every asset copy
	// succeeded. Returns the new section id.
	ImportSection(ctx context.Context, req *ImportSectionRequest) (string, error)

	// ImportItems imports a mixed batch, isolating per-item failures.
	// Destination routing errors propagate; they indicate a caller bug.
	ImportItems(ctx context.Context, req *ImportItemsRequest) (*ImportItemsResult, error)
}
