package docsystem

import (
	"context"

	"docweld/internal/domain/models/docsystem"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	Create(ctx context.Context, project *docsystem.Project) error
	GetByID(ctx context.Context, id string) (*docsystem.Project, error)
	List(ctx context.Context) ([]docsystem.Project, error)
	Update(ctx context.Context, project *docsystem.Project) error
	SoftDelete(ctx context.Context, id, actor string) error
}

// LibraryRepository defines data access operations for libraries
type LibraryRepository interface {
	Create(ctx context.Context, library *docsystem.Library) error
	GetByID(ctx context.Context, id string) (*docsystem.Library, error)
	List(ctx context.Context) ([]docsystem.Library, error)
	Update(ctx context.Context, library *docsystem.Library) error
	SoftDelete(ctx context.Context, id, actor string) error
}

// WeldLogRepository defines data access operations for weld logs
type WeldLogRepository interface {
	Create(ctx context.Context, weldLog *docsystem.WeldLog) error
	GetByID(ctx context.Context, id string) (*docsystem.WeldLog, error)
	ListByProject(ctx context.Context, projectID string) ([]docsystem.WeldLog, error)
	Update(ctx context.Context, weldLog *docsystem.WeldLog) error
	SoftDelete(ctx context.Context, id, actor string) error
}
