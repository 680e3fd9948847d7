package docsystem

import (
	"context"

	"docweld/internal/domain/models/docsystem"
)

// ProjectService handles project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateContainerRequest) (*docsystem.Project, error)
	GetProject(ctx context.Context, id string) (*docsystem.Project, error)
	ListProjects(ctx context.Context) ([]docsystem.Project, error)
	UpdateProject(ctx context.Context, id string, req *UpdateContainerRequest) (*docsystem.Project, error)
	DeleteProject(ctx context.Context, id, actor string) error
}

// LibraryService handles library business logic
type LibraryService interface {
	CreateLibrary(ctx context.Context, req *CreateContainerRequest) (*docsystem.Library, error)
	GetLibrary(ctx context.Context, id string) (*docsystem.Library, error)
	ListLibraries(ctx context.Context) ([]docsystem.Library, error)
	UpdateLibrary(ctx context.Context, id string, req *UpdateContainerRequest) (*docsystem.Library, error)
	DeleteLibrary(ctx context.Context, id, actor string) error
}

// WeldLogService handles weld log business logic
type WeldLogService interface {
	CreateWeldLog(ctx context.Context, req *CreateWeldLogRequest) (*docsystem.WeldLog, error)
	GetWeldLog(ctx context.Context, id string) (*docsystem.WeldLog, error)
	ListWeldLogs(ctx context.Context, projectID string) ([]docsystem.WeldLog, error)
	UpdateWeldLog(ctx context.Context, id string, req *UpdateContainerRequest) (*docsystem.WeldLog, error)
	DeleteWeldLog(ctx context.Context, id, actor string) error
}

// SectionService handles section business logic within project/library
// containers
type SectionService interface {
	CreateSection(ctx context.Context, req *CreateSectionRequest) (*docsystem.Section, error)
	ListSections(ctx context.Context, keys docsystem.ScopeKeys) ([]docsystem.Section, error)
	UpdateSection(ctx context.Context, id string, req *UpdateSectionRequest) (*docsystem.Section, error)
	DeleteSection(ctx context.Context, id, actor string) error
}

// DocumentService handles document business logic for already-uploaded
// documents: listing, renaming, reordering, soft deletion, downloads.
// Creation by upload and creation by import are separate services.
type DocumentService interface {
	GetDocument(ctx context.Context, id string) (*docsystem.Document, error)
	ListDocuments(ctx context.Context, req *ListDocumentsRequest) ([]docsystem.Document, error)
	RenameDocument(ctx context.Context, id string, req *RenameDocumentRequest) (*docsystem.Document, error)

	// ReorderDocument moves a document between two neighbors by assigning it
	// the midpoint of their order values.
	ReorderDocument(ctx context.Context, id string, req *ReorderDocumentRequest) (*docsystem.Document, error)

	DeleteDocument(ctx context.Context, id, actor string) error

	// DownloadURL returns a time-limited URL for the document's primary asset
	DownloadURL(ctx context.Context, id string) (string, error)
}

// CreateContainerRequest creates a project or library
type CreateContainerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Actor       string `json:"-"` // Set by handler from auth context
}

// UpdateContainerRequest renames a project, library or weld log
type UpdateContainerRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Actor       string  `json:"-"`
}

// CreateWeldLogRequest creates a weld log inside a project
type CreateWeldLogRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Actor     string `json:"-"`
}

// CreateSectionRequest creates a section in a project or library container
type CreateSectionRequest struct {
	ProjectID   string `json:"project_id,omitempty"`
	LibraryID   string `json:"library_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Actor       string `json:"-"`
}

// UpdateSectionRequest renames a section
type UpdateSectionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Actor       string  `json:"-"`
}

// ListDocumentsRequest lists documents in a container scope, optionally
// narrowed to one section
type ListDocumentsRequest struct {
	Keys            docsystem.ScopeKeys `json:"keys"`
	SectionID       *string             `json:"section_id,omitempty"`
	FilterBySection bool                `json:"filter_by_section,omitempty"`
}

// RenameDocumentRequest renames a document
type RenameDocumentRequest struct {
	Title string `json:"title"`
	Actor string `json:"-"`
}

// ReorderDocumentRequest moves a document between two neighbors. PrevOrder
// and NextOrder are the order values of the surrounding documents after the
// move; either may be omitted at the edges of the list.
type ReorderDocumentRequest struct {
	PrevOrder *int64 `json:"prev_order,omitempty"`
	NextOrder *int64 `json:"next_order,omitempty"`
	Actor     string `json:"-"`
}
