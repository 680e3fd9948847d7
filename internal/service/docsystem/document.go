package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	docsysRepo "docweld/internal/domain/repositories/docsystem"
	"docweld/internal/domain/services"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

const downloadURLExpiry = 15 * time.Minute

// documentService implements docsysSvc.DocumentService
type documentService struct {
	repo   docsysRepo.DocumentRepository
	store  services.ObjectStore
	logger *slog.Logger
}

// NewDocumentService creates the document service
func NewDocumentService(repo docsysRepo.DocumentRepository, store services.ObjectStore, logger *slog.Logger) docsysSvc.DocumentService {
	return &documentService{repo: repo, store: store, logger: logger}
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *documentService) ListDocuments(ctx context.Context, req *docsysSvc.ListDocumentsRequest) ([]models.Document, error) {
	return s.repo.ListActive(ctx, docsysRepo.DocumentScope{
		Keys:            req.Keys,
		FilterBySection: req.FilterBySection,
		SectionID:       req.SectionID,
	})
}

func (s *documentService) RenameDocument(ctx context.Context, id string, req *docsysSvc.RenameDocumentRequest) (*models.Document, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 500)),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Title = req.Title
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("rename document: %w", err)
	}
	return doc, nil
}

// ReorderDocument moves a document between two neighbors. The new order is
// the midpoint of the neighbors' values; at the edges of the list the gap
// rule extends past the outermost neighbor instead.
func (s *documentService) ReorderDocument(ctx context.Context, id string, req *docsysSvc.ReorderDocumentRequest) (*models.Document, error) {
	if req.PrevOrder == nil && req.NextOrder == nil {
		return nil, &domain.ValidationError{Message: "at least one of prev_order and next_order is required"}
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var order int64
	switch {
	case req.PrevOrder != nil && req.NextOrder != nil:
		order = models.OrderBetween(*req.PrevOrder, *req.NextOrder)
	case req.PrevOrder != nil:
		order = *req.PrevOrder + models.OrderGap
	default:
		order = *req.NextOrder - models.OrderGap
	}

	doc.Order = order
	doc.UpdatedAt = time.Now()
	doc.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("reorder document: %w", err)
	}

	s.logger.Info("document reordered", "document_id", id, "order", order, "actor", req.Actor)
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id, actor string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("document deleted", "document_id", id, "actor", actor)
	return nil
}

// DownloadURL returns a time-limited URL for the document's primary asset
func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc.StorageRef == "" {
		return "", &domain.NotFoundError{Message: "document has no stored file"}
	}
	return s.store.PresignGet(ctx, doc.StorageRef, downloadURLExpiry)
}
