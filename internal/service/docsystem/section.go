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

// sectionService implements docsysSvc.SectionService
type sectionService struct {
	repo   docsysRepo.SectionRepository
	logger *slog.Logger
}

// NewSectionService creates the section service
func NewSectionService(repo docsysRepo.SectionRepository, logger *slog.Logger) docsysSvc.SectionService {
	return &sectionService{repo: repo, logger: logger}
}

func (s *sectionService) CreateSection(ctx context.Context, req *docsysSvc.CreateSectionRequest) (*models.Section, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}
	if (req.ProjectID == "") == (req.LibraryID == "") {
		return nil, &domain.ValidationError{Message: "exactly one of project_id and library_id is required"}
	}

	keys := models.ScopeKeys{ProjectID: req.ProjectID, LibraryID: req.LibraryID}
	highest, exists, err := s.repo.HighestOrder(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("query section insertion order: %w", err)
	}

	now := time.Now()
	section := &models.Section{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Order:       models.NextOrderAfter(highest, exists),
		Status:      models.StatusActive,
		CreatedAt:   now,
		CreatedBy:   req.Actor,
		UpdatedAt:   now,
		UpdatedBy:   req.Actor,
	}
	if req.ProjectID != "" {
		projectID := req.ProjectID
		section.ProjectID = &projectID
	}
	if req.LibraryID != "" {
		libraryID := req.LibraryID
		section.LibraryID = &libraryID
	}

	if err := s.repo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	s.logger.Info("section created", "section_id", section.ID, "actor", req.Actor)
	return section, nil
}

func (s *sectionService) ListSections(ctx context.Context, keys models.ScopeKeys) ([]models.Section, error) {
	return s.repo.ListActive(ctx, keys)
}

func (s *sectionService) UpdateSection(ctx context.Context, id string, req *docsysSvc.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		section.Name = *req.Name
	}
	if req.Description != nil {
		section.Description = *req.Description
	}
	section.UpdatedAt = time.Now()
	section.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, section); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}
	return section, nil
}

func (s *sectionService) DeleteSection(ctx context.Context, id, actor string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("section deleted", "section_id", id, "actor", actor)
	return nil
}
