package docsystem

import (
	"context"

	"docweld/internal/domain/models/docsystem"
)

// SectionRepository defines data access operations for sections
type SectionRepository interface {
	// Create inserts a new section row. The caller supplies the id.
	Create(ctx context.Context, section *docsystem.Section) error

	// GetByID retrieves an active section by id
	GetByID(ctx context.Context, id string) (*docsystem.Section, error)

	// HighestOrder returns the maximum order value among active sections in
	// the container scope; false when the scope is empty.
	HighestOrder(ctx context.Context, keys docsystem.ScopeKeys) (int64, bool, error)

	// ListActive lists active sections in the container ordered ascending
	ListActive(ctx context.Context, keys docsystem.ScopeKeys) ([]docsystem.Section, error)

	// Update persists name, description and order changes
	Update(ctx context.Context, section *docsystem.Section) error

	// SoftDelete flips the section's status to deleted
	SoftDelete(ctx context.Context, id, actor string) error
}
