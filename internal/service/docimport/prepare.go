package docimport

import (
	"path"
	"strings"
	"time"

	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

// Fallbacks applied to loosely-shaped source records
const (
	defaultDocumentTitle = "Untitled Document"
	defaultFileType      = "FILE"
)

// actorOrSystem returns the audit actor, falling back to the "system"
// sentinel when the caller supplied none.
func actorOrSystem(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}

// documentTitle applies the title fallback
func documentTitle(title string) string {
	if title == "" {
		return defaultDocumentTitle
	}
	return title
}

// deriveFileType prefers the source's file type, then the uppercase
// extension of its storage ref, then the generic fallback.
func deriveFileType(fileType, storageRef string) string {
	if fileType != "" {
		return fileType
	}
	ext := strings.TrimPrefix(path.Ext(storageRef), ".")
	if ext != "" {
		return strings.ToUpper(ext)
	}
	return defaultFileType
}

// prepareNewDocumentData builds the destination metadata row for one
// imported document. The section id is forced to nil for flat destinations
// regardless of what the caller requested; scoping keys are exactly the
// routed set.
func prepareNewDocumentData(
	source *docsysSvc.SourceDocument,
	newID string,
	dest models.Destination,
	sectionID *string,
	order int64,
	refs copiedRefs,
	actor string,
	now time.Time,
) *models.Document {
	if dest.Flat() {
		sectionID = nil
	}

	doc := &models.Document{
		ID:              newID,
		Title:           documentTitle(source.Title),
		FileType:        deriveFileType(source.FileType, source.StorageRef),
		FileSize:        source.FileSize,
		SectionID:       sectionID,
		StorageRef:      refs.storageRef,
		ThumbStorageRef: refs.thumbStorageRef,
		Order:           order,
		Status:          models.StatusActive,
		ProcessingState: models.StateCompleted,
		CreatedAt:       now,
		CreatedBy:       actor,
		UpdatedAt:       now,
		UpdatedBy:       actor,
	}

	if source.ID != "" {
		importedFrom := source.ID
		importedAt := now
		doc.ImportedFrom = &importedFrom
		doc.ImportedAt = &importedAt
	}

	applyScopeKeys(doc, dest.Keys)
	return doc
}

// prepareNewSectionData builds the destination metadata row for an imported
// section, carrying provenance back to the source section.
func prepareNewSectionData(
	source *docsysSvc.SourceSection,
	newID string,
	dest models.Destination,
	order int64,
	actor string,
	now time.Time,
) *models.Section {
	importedFrom := source.ID
	importedAt := now

	section := &models.Section{
		ID:           newID,
		Name:         source.Name,
		Description:  source.Description,
		Order:        order,
		Status:       models.StatusActive,
		ImportedFrom: &importedFrom,
		ImportedAt:   &importedAt,
		CreatedAt:    now,
		CreatedBy:    actor,
		UpdatedAt:    now,
		UpdatedBy:    actor,
	}

	if dest.Keys.ProjectID != "" {
		projectID := dest.Keys.ProjectID
		section.ProjectID = &projectID
	}
	if dest.Keys.LibraryID != "" {
		libraryID := dest.Keys.LibraryID
		section.LibraryID = &libraryID
	}

	return section
}

// applyScopeKeys sets exactly the non-empty scoping keys on the document
func applyScopeKeys(doc *models.Document, keys models.ScopeKeys) {
	if keys.ProjectID != "" {
		projectID := keys.ProjectID
		doc.ProjectID = &projectID
	}
	if keys.LibraryID != "" {
		libraryID := keys.LibraryID
		doc.LibraryID = &libraryID
	}
	if keys.WeldLogID != "" {
		weldLogID := keys.WeldLogID
		doc.WeldLogID = &weldLogID
	}
	if keys.WeldID != "" {
		weldID := keys.WeldID
		doc.WeldID = &weldID
	}
}

// sourceFromDocument converts a stored document into the loose source shape
// the import pipeline consumes, used when copying a whole section.
func sourceFromDocument(doc *models.Document) docsysSvc.SourceDocument {
	return docsysSvc.SourceDocument{
		ID:              doc.ID,
		Title:           doc.Title,
		FileType:        doc.FileType,
		FileSize:        doc.FileSize,
		StorageRef:      doc.StorageRef,
		ThumbStorageRef: doc.ThumbStorageRef,
	}
}
