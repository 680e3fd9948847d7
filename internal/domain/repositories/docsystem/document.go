package docsystem

import (
	"context"

	"docweld/internal/domain/models/docsystem"
)

// DocumentScope selects the active documents of one container scope.
// Empty scope keys are not part of the filter. When FilterBySection is set,
// the scope is narrowed to one section (nil SectionID = unassigned
// documents); flat containers scan the whole scope instead.
type DocumentScope struct {
	Keys            docsystem.ScopeKeys
	FilterBySection bool
	SectionID       *string
}

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create inserts a new document row as a single atomic write.
	// The caller supplies the id.
	Create(ctx context.Context, doc *docsystem.Document) error

	// GetByID retrieves an active document by id
	GetByID(ctx context.Context, id string) (*docsystem.Document, error)

	// HighestOrder returns the maximum order value among active documents in
	// the scope, querying sorted descending limited to one row. The second
	// return is false when the scope is empty.
	HighestOrder(ctx context.Context, scope DocumentScope) (int64, bool, error)

	// ListActive lists active documents in the scope ordered ascending by
	// their order value.
	ListActive(ctx context.Context, scope DocumentScope) ([]docsystem.Document, error)

	// Update persists title and order changes to an existing document
	Update(ctx context.Context, doc *docsystem.Document) error

	// SoftDelete flips the document's status to deleted
	SoftDelete(ctx context.Context, id, actor string) error
}
