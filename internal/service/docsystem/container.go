package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	docsysRepo "docweld/internal/domain/repositories/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

// projectService implements docsysSvc.ProjectService
type projectService struct {
	repo   docsysRepo.ProjectRepository
	logger *slog.Logger
}

// NewProjectService creates the project service
func NewProjectService(repo docsysRepo.ProjectRepository, logger *slog.Logger) docsysSvc.ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func validateContainerCreate(req *docsysSvc.CreateContainerRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

func (s *projectService) CreateProject(ctx context.Context, req *docsysSvc.CreateContainerRequest) (*models.Project, error) {
	if err := validateContainerCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      models.StatusActive,
		CreatedAt:   now,
		CreatedBy:   req.Actor,
		UpdatedAt:   now,
		UpdatedBy:   req.Actor,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("project created", "project_id", project.ID, "actor", req.Actor)
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req *docsysSvc.UpdateContainerRequest) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	project.UpdatedAt = time.Now()
	project.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id, actor string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("project deleted", "project_id", id, "actor", actor)
	return nil
}

// libraryService implements docsysSvc.LibraryService
type libraryService struct {
	repo   docsysRepo.LibraryRepository
	logger *slog.Logger
}

// NewLibraryService creates the library service
func NewLibraryService(repo docsysRepo.LibraryRepository, logger *slog.Logger) docsysSvc.LibraryService {
	return &libraryService{repo: repo, logger: logger}
}

func (s *libraryService) CreateLibrary(ctx context.Context, req *docsysSvc.CreateContainerRequest) (*models.Library, error) {
	if err := validateContainerCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	library := &models.Library{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      models.StatusActive,
		CreatedAt:   now,
		CreatedBy:   req.Actor,
		UpdatedAt:   now,
		UpdatedBy:   req.Actor,
	}

	if err := s.repo.Create(ctx, library); err != nil {
		return nil, fmt.Errorf("create library: %w", err)
	}

	s.logger.Info("library created", "library_id", library.ID, "actor", req.Actor)
	return library, nil
}

func (s *libraryService) GetLibrary(ctx context.Context, id string) (*models.Library, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *libraryService) ListLibraries(ctx context.Context) ([]models.Library, error) {
	return s.repo.List(ctx)
}

func (s *libraryService) UpdateLibrary(ctx context.Context, id string, req *docsysSvc.UpdateContainerRequest) (*models.Library, error) {
	library, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		library.Name = *req.Name
	}
	if req.Description != nil {
		library.Description = *req.Description
	}
	library.UpdatedAt = time.Now()
	library.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, library); err != nil {
		return nil, fmt.Errorf("update library: %w", err)
	}
	return library, nil
}

func (s *libraryService) DeleteLibrary(ctx context.Context, id, actor string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("library deleted", "library_id", id, "actor", actor)
	return nil
}

// weldLogService implements docsysSvc.WeldLogService
type weldLogService struct {
	repo        docsysRepo.WeldLogRepository
	projectRepo docsysRepo.ProjectRepository
	logger      *slog.Logger
}

// NewWeldLogService creates the weld log service
func NewWeldLogService(repo docsysRepo.WeldLogRepository, projectRepo docsysRepo.ProjectRepository, logger *slog.Logger) docsysSvc.WeldLogService {
	return &weldLogService{repo: repo, projectRepo: projectRepo, logger: logger}
}

func (s *weldLogService) CreateWeldLog(ctx context.Context, req *docsysSvc.CreateWeldLogRequest) (*models.WeldLog, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	// the owning project must exist and be active
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now()
	weldLog := &models.WeldLog{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Status:    models.StatusActive,
		CreatedAt: now,
		CreatedBy: req.Actor,
		UpdatedAt: now,
		UpdatedBy: req.Actor,
	}

	if err := s.repo.Create(ctx, weldLog); err != nil {
		return nil, fmt.Errorf("create weld log: %w", err)
	}

	s.logger.Info("weld log created", "weld_log_id", weldLog.ID, "project_id", req.ProjectID, "actor", req.Actor)
	return weldLog, nil
}

func (s *weldLogService) GetWeldLog(ctx context.Context, id string) (*models.WeldLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *weldLogService) ListWeldLogs(ctx context.Context, projectID string) ([]models.WeldLog, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *weldLogService) UpdateWeldLog(ctx context.Context, id string, req *docsysSvc.UpdateContainerRequest) (*models.WeldLog, error) {
	weldLog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		weldLog.Name = *req.Name
	}
	weldLog.UpdatedAt = time.Now()
	weldLog.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, weldLog); err != nil {
		return nil, fmt.Errorf("update weld log: %w", err)
	}
	return weldLog, nil
}

func (s *weldLogService) DeleteWeldLog(ctx context.Context, id, actor string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("weld log deleted", "weld_log_id", id, "actor", actor)
	return nil
}
