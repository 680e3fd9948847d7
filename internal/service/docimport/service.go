package docimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	"docweld/internal/domain/repositories"
	docsysRepo "docweld/internal/domain/repositories/docsystem"
	"docweld/internal/domain/services"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

// importService copies documents and sections between containers. Asset
// copies always run before metadata writes so that a copy failure never
// leaves a metadata row pointing at missing objects. The reverse gap is
// accepted: a metadata write failure can leave already-copied objects
// without a row, which is logged and left for storage cleanup.
type importService struct {
	docRepo     docsysRepo.DocumentRepository
	sectionRepo docsysRepo.SectionRepository
	txManager   repositories.TransactionManager
	store       services.ObjectStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewImportService creates the import service
func NewImportService(
	docRepo docsysRepo.DocumentRepository,
	sectionRepo docsysRepo.SectionRepository,
	txManager repositories.TransactionManager,
	store services.ObjectStore,
	logger *slog.Logger,
) docsysSvc.ImportService {
	return &importService{
		docRepo:     docRepo,
		sectionRepo: sectionRepo,
		txManager:   txManager,
		store:       store,
		logger:      logger,
		now:         time.Now,
	}
}

// ImportDocument imports one document into the destination container. The
// insertion order is claimed from the current highest order in the target
// scope, assets are copied, and a single metadata row is written last.
func (s *importService) ImportDocument(ctx context.Context, req *docsysSvc.ImportDocumentRequest) (string, error) {
	dest, err := resolveDestination(req.DestinationType, req.DestinationID, req.Context)
	if err != nil {
		return "", err
	}

	actor := actorOrSystem(req.Actor)
	newID := uuid.NewString()

	scope := docsysRepo.DocumentScope{Keys: dest.Keys}
	sectionID := req.TargetSectionID
	if dest.Flat() {
		// flat containers have no sections; order over the whole scope
		sectionID = nil
	} else {
		scope.FilterBySection = true
		scope.SectionID = sectionID
	}

	highest, exists, err := s.docRepo.HighestOrder(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("query insertion order: %w", err)
	}
	order := models.NextOrderAfter(highest, exists)

	refs, err := s.copyDocumentAssets(ctx, &req.Source, newID)
	if err != nil {
		return "", err
	}

	doc := prepareNewDocumentData(&req.Source, newID, dest, sectionID, order, refs, actor, s.now())
	if err := s.docRepo.Create(ctx, doc); err != nil {
		if refs.storageRef != "" || refs.thumbStorageRef != "" {
			s.logger.Warn("copied assets orphaned after metadata write failure",
				"document_id", newID,
				"storage_ref", refs.storageRef,
				"thumb_storage_ref", refs.thumbStorageRef,
			)
		}
		return "", fmt.Errorf("persist imported document: %w", err)
	}

	s.logger.Info("document imported",
		"document_id", newID,
		"source_id", req.Source.ID,
		"destination_type", string(req.DestinationType),
		"destination_id", req.DestinationID,
		"order", order,
	)

	return newID, nil
}

// ImportSection imports a section and all its member documents. Every asset
// copy must succeed before any metadata is written; all rows then commit in
// one transaction, so the destination never sees a partial section.
func (s *importService) ImportSection(ctx context.Context, req *docsysSvc.ImportSectionRequest) (string, error) {
	if req.Source.ID == "" || req.Source.Name == "" {
		return "", fmt.Errorf("%w: section id and name are required", domain.ErrInvalidSourceSection)
	}

	dest, err := resolveDestination(req.DestinationType, req.DestinationID, req.Context)
	if err != nil {
		return "", err
	}
	if dest.Flat() {
		return "", fmt.Errorf("%w: %s", domain.ErrSectionsNotSupported, req.DestinationType)
	}

	source, err := resolveDestination(req.SourceType, req.SourceID, docsysSvc.ImportContext{})
	if err != nil {
		return "", err
	}

	actor := actorOrSystem(req.Actor)
	now := s.now()
	newSectionID := uuid.NewString()

	highest, exists, err := s.sectionRepo.HighestOrder(ctx, dest.Keys)
	if err != nil {
		return "", fmt.Errorf("query section insertion order: %w", err)
	}
	section := prepareNewSectionData(&req.Source, newSectionID, dest, models.NextOrderAfter(highest, exists), actor, now)

	// member documents of the source section, ascending by order
	sourceSectionID := req.Source.ID
	sourceDocs, err := s.docRepo.ListActive(ctx, docsysRepo.DocumentScope{
		Keys:            source.Keys,
		FilterBySection: true,
		SectionID:       &sourceSectionID,
	})
	if err != nil {
		return "", fmt.Errorf("list source section documents: %w", err)
	}

	staged := make([]*models.Document, 0, len(sourceDocs))
	for i := range sourceDocs {
		src := sourceFromDocument(&sourceDocs[i])
		newDocID := uuid.NewString()

		refs, err := s.copyDocumentAssets(ctx, &src, newDocID)
		if err != nil {
			return "", err
		}

		// fresh orders from the base, preserving the source's relative order
		order := models.OrderBase + int64(i)*models.OrderGap
		staged = append(staged, prepareNewDocumentData(&src, newDocID, dest, &newSectionID, order, refs, actor, now))
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.sectionRepo.Create(txCtx, section); err != nil {
			return fmt.Errorf("persist imported section: %w", err)
		}
		for _, doc := range staged {
			if err := s.docRepo.Create(txCtx, doc); err != nil {
				return fmt.Errorf("persist imported document %s: %w", doc.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("copied section assets orphaned after commit failure",
			"section_id", newSectionID,
			"source_section_id", req.Source.ID,
			"document_count", len(staged),
		)
		return "", fmt.Errorf("commit section import: %w", err)
	}

	s.logger.Info("section imported",
		"section_id", newSectionID,
		"source_section_id", req.Source.ID,
		"destination_type", string(req.DestinationType),
		"destination_id", req.DestinationID,
		"document_count", len(staged),
	)

	return newSectionID, nil
}

// ImportItems imports a mixed batch of sections and documents. Sections run
// first, then documents; each item fails independently and failures are
// collected in the result. An unroutable destination fails the whole call.
func (s *importService) ImportItems(ctx context.Context, req *docsysSvc.ImportItemsRequest) (*docsysSvc.ImportItemsResult, error) {
	dest, err := resolveDestination(req.DestinationType, req.DestinationID, req.Context)
	if err != nil {
		return nil, err
	}

	result := &docsysSvc.ImportItemsResult{
		Sections:  []docsysSvc.ImportedSection{},
		Documents: []docsysSvc.ImportedDocument{},
		Errors:    []docsysSvc.ImportItemError{},
	}

	var sections, documents []docsysSvc.ImportItem
	for _, item := range req.Items {
		switch item.Kind {
		case docsysSvc.ImportItemSection:
			sections = append(sections, item)
		case docsysSvc.ImportItemDocument:
			documents = append(documents, item)
		default:
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{
				Item:  item,
				Error: fmt.Sprintf("unknown import item kind %q", item.Kind),
			})
		}
	}

	for _, item := range sections {
		if dest.Flat() {
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{
				Item:  item,
				Error: fmt.Sprintf("%s: %s destinations hold documents directly", domain.ErrSectionsNotSupported, req.DestinationType),
			})
			continue
		}
		if item.Section == nil {
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{
				Item:  item,
				Error: "section item is missing its section data",
			})
			continue
		}

		sourceType, sourceID := sectionSource(item)
		newID, err := s.ImportSection(ctx, &docsysSvc.ImportSectionRequest{
			Source:          *item.Section,
			SourceType:      sourceType,
			SourceID:        sourceID,
			DestinationType: req.DestinationType,
			DestinationID:   req.DestinationID,
			Context:         req.Context,
			Actor:           req.Actor,
		})
		if err != nil {
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{Item: item, Error: err.Error()})
			continue
		}
		result.Sections = append(result.Sections, docsysSvc.ImportedSection{
			ID:       newID,
			SourceID: item.Section.ID,
			Name:     item.Section.Name,
		})
	}

	for _, item := range documents {
		if item.Document == nil {
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{
				Item:  item,
				Error: "document item is missing its document data",
			})
			continue
		}

		target := item.TargetSectionID
		if target == nil {
			target = item.SectionID
		}

		newID, err := s.ImportDocument(ctx, &docsysSvc.ImportDocumentRequest{
			Source:          *item.Document,
			TargetSectionID: target,
			DestinationType: req.DestinationType,
			DestinationID:   req.DestinationID,
			Context:         req.Context,
			Actor:           req.Actor,
		})
		if err != nil {
			result.Errors = append(result.Errors, docsysSvc.ImportItemError{Item: item, Error: err.Error()})
			continue
		}
		result.Documents = append(result.Documents, docsysSvc.ImportedDocument{
			ID:       newID,
			SourceID: item.Document.ID,
			Title:    documentTitle(item.Document.Title),
		})
	}

	s.logger.Info("batch import finished",
		"destination_type", string(req.DestinationType),
		"destination_id", req.DestinationID,
		"sections", len(result.Sections),
		"documents", len(result.Documents),
		"errors", len(result.Errors),
	)

	return result, nil
}

// sectionSource derives the source container of a section item from its
// scoping ids. A project id wins; otherwise the library id is used.
func sectionSource(item docsysSvc.ImportItem) (models.DestinationType, string) {
	if item.ProjectID != "" {
		return models.DestinationProject, item.ProjectID
	}
	return models.DestinationLibrary, item.LibraryID
}
