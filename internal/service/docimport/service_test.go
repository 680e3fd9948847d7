package docimport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

type fixture struct {
	docs     *fakeDocRepo
	sections *fakeSectionRepo
	store    *fakeObjectStore
	svc      docsysSvc.ImportService
}

func newFixture() *fixture {
	docs := &fakeDocRepo{}
	sections := &fakeSectionRepo{}
	store := &fakeObjectStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		docs:     docs,
		sections: sections,
		store:    store,
		svc:      NewImportService(docs, sections, &fakeTxManager{docs: docs, sections: sections}, store, logger),
	}
}

func strptr(s string) *string { return &s }

func seedDoc(f *fixture, doc models.Document) {
	if doc.Status == "" {
		doc.Status = models.StatusActive
	}
	f.docs.docs = append(f.docs.docs, doc)
}

func TestImportDocumentIntoEmptyProject(t *testing.T) {
	f := newFixture()

	id, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source: docsysSvc.SourceDocument{
			ID:         "src-1",
			Title:      "WPS 004",
			FileType:   "PDF",
			FileSize:   1234,
			StorageRef: "documents/src-1/wps.pdf",
		},
		TargetSectionID: strptr("sec-1"),
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, f.docs.docs, 1)
	doc := f.docs.docs[0]
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "WPS 004", doc.Title)
	assert.Equal(t, int64(1000), doc.Order, "first document in scope starts at base")
	require.NotNil(t, doc.ProjectID)
	assert.Equal(t, "proj-1", *doc.ProjectID)
	require.NotNil(t, doc.SectionID)
	assert.Equal(t, "sec-1", *doc.SectionID)
	assert.Equal(t, "documents/"+id+"/wps.pdf", doc.StorageRef)
	require.NotNil(t, doc.ImportedFrom)
	assert.Equal(t, "src-1", *doc.ImportedFrom)

	assert.Equal(t, "documents/src-1/wps.pdf", f.store.copies[doc.StorageRef])
}

func TestImportDocumentAppendsAfterHighest(t *testing.T) {
	f := newFixture()
	seedDoc(f, models.Document{ID: "d1", ProjectID: strptr("proj-1"), SectionID: strptr("sec-1"), Order: 3500})
	// same project, other section: must not affect the target scope
	seedDoc(f, models.Document{ID: "d2", ProjectID: strptr("proj-1"), SectionID: strptr("sec-2"), Order: 9000})
	// other project entirely
	seedDoc(f, models.Document{ID: "d3", ProjectID: strptr("proj-2"), SectionID: strptr("sec-1"), Order: 50000})

	id, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source:          docsysSvc.SourceDocument{Title: "Doc"},
		TargetSectionID: strptr("sec-1"),
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)

	doc, err := f.docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), doc.Order, "gap above the section's own highest")
}

func TestImportDocumentFlatDestinationIgnoresSection(t *testing.T) {
	f := newFixture()
	seedDoc(f, models.Document{ID: "d1", WeldLogID: strptr("wl-1"), ProjectID: strptr("proj-1"), Order: 2000})

	id, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source:          docsysSvc.SourceDocument{Title: "Weld photo"},
		TargetSectionID: strptr("sec-1"),
		DestinationType: models.DestinationWeldLog,
		DestinationID:   "wl-1",
		Context:         docsysSvc.ImportContext{ProjectID: "proj-1"},
		Actor:           "user-1",
	})
	require.NoError(t, err)

	doc, err := f.docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, doc.SectionID, "flat destinations never assign a section")
	require.NotNil(t, doc.WeldLogID)
	assert.Equal(t, "wl-1", *doc.WeldLogID)
	require.NotNil(t, doc.ProjectID)
	assert.Equal(t, "proj-1", *doc.ProjectID)
	assert.Equal(t, int64(3000), doc.Order)
}

func TestImportDocumentWithoutStorageRef(t *testing.T) {
	f := newFixture()

	id, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source:          docsysSvc.SourceDocument{ID: "src-1", Title: "Metadata only"},
		DestinationType: models.DestinationLibrary,
		DestinationID:   "lib-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)

	doc, err := f.docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, doc.StorageRef)
	assert.Empty(t, f.store.copies, "nothing to copy for a ref-less source")
}

func TestImportDocumentAssetCopyFailure(t *testing.T) {
	f := newFixture()
	f.store.failRef = "documents/src-1/wps.pdf"

	_, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source: docsysSvc.SourceDocument{
			ID:         "src-1",
			StorageRef: "documents/src-1/wps.pdf",
		},
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.Error(t, err)

	var copyErr *domain.AssetCopyError
	require.ErrorAs(t, err, &copyErr)
	assert.Equal(t, "documents/src-1/wps.pdf", copyErr.StorageRef)
	assert.Empty(t, f.docs.docs, "no metadata row after a failed copy")
}

func TestImportDocumentThumbFailureLeavesMainCopy(t *testing.T) {
	f := newFixture()
	f.store.failRef = "documents/src-1/thumb.jpg"

	_, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source: docsysSvc.SourceDocument{
			ID:              "src-1",
			StorageRef:      "documents/src-1/wps.pdf",
			ThumbStorageRef: "documents/src-1/thumb.jpg",
		},
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.Error(t, err)

	assert.Empty(t, f.docs.docs)
	// the main copy stays behind; there is no compensating delete
	require.Len(t, f.store.order, 1)
	assert.Equal(t, "documents/src-1/wps.pdf", f.store.copies[f.store.order[0]])
}

func TestImportDocumentMetadataWriteFailure(t *testing.T) {
	f := newFixture()
	f.docs.failOnCreate = 1

	_, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source: docsysSvc.SourceDocument{
			ID:         "src-1",
			StorageRef: "documents/src-1/wps.pdf",
		},
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.Error(t, err)

	assert.Empty(t, f.docs.docs)
	assert.Len(t, f.store.copies, 1, "copied assets are not cleaned up")
}

func TestImportDocumentInvalidDestination(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ImportDocument(context.Background(), &docsysSvc.ImportDocumentRequest{
		Source:          docsysSvc.SourceDocument{Title: "Doc"},
		DestinationType: "folder",
		DestinationID:   "f-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidDestinationType)
	assert.Empty(t, f.store.copies, "routing fails before any I/O")
}

func TestImportSectionPreservesRelativeOrder(t *testing.T) {
	f := newFixture()
	// source section in a library, with sparse non-contiguous orders
	seedDoc(f, models.Document{ID: "s5", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 5, StorageRef: "documents/s5/a.pdf"})
	seedDoc(f, models.Document{ID: "s20", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 20, StorageRef: "documents/s20/b.pdf"})
	seedDoc(f, models.Document{ID: "s9", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 9, StorageRef: "documents/s9/c.pdf"})
	// existing section in the destination project
	f.sections.sections = append(f.sections.sections, models.Section{
		ID: "existing", ProjectID: strptr("proj-1"), Order: 1000, Status: models.StatusActive,
	})

	newSectionID, err := f.svc.ImportSection(context.Background(), &docsysSvc.ImportSectionRequest{
		Source:          docsysSvc.SourceSection{ID: "src-sec", Name: "Procedures"},
		SourceType:      models.DestinationLibrary,
		SourceID:        "lib-1",
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)

	require.Len(t, f.sections.sections, 2)
	created := f.sections.sections[1]
	assert.Equal(t, newSectionID, created.ID)
	assert.Equal(t, "Procedures", created.Name)
	assert.Equal(t, int64(2000), created.Order, "appends after the existing section")
	require.NotNil(t, created.ProjectID)
	assert.Equal(t, "proj-1", *created.ProjectID)

	// member documents: fresh orders from the base, source relative order kept
	imported := map[string]models.Document{}
	for _, doc := range f.docs.docs {
		if doc.ImportedFrom != nil && doc.ProjectID != nil {
			imported[*doc.ImportedFrom] = doc
		}
	}
	require.Len(t, imported, 3)
	assert.Equal(t, int64(1000), imported["s5"].Order)
	assert.Equal(t, int64(2000), imported["s9"].Order)
	assert.Equal(t, int64(3000), imported["s20"].Order)
	for src, doc := range imported {
		require.NotNil(t, doc.SectionID, "source %s", src)
		assert.Equal(t, newSectionID, *doc.SectionID)
		assert.Nil(t, doc.LibraryID, "destination scope replaces the source scope")
	}
}

func TestImportSectionAllOrNothing(t *testing.T) {
	f := newFixture()
	seedDoc(f, models.Document{ID: "s1", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 1000, StorageRef: "documents/s1/a.pdf"})
	seedDoc(f, models.Document{ID: "s2", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 2000, StorageRef: "documents/s2/b.pdf"})
	f.docs.failOnCreate = f.docs.creates + 2 // second staged insert fails inside the transaction

	docsBefore := len(f.docs.docs)

	_, err := f.svc.ImportSection(context.Background(), &docsysSvc.ImportSectionRequest{
		Source:          docsysSvc.SourceSection{ID: "src-sec", Name: "Procedures"},
		SourceType:      models.DestinationLibrary,
		SourceID:        "lib-1",
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.Error(t, err)

	assert.Empty(t, f.sections.sections, "section row rolled back")
	assert.Len(t, f.docs.docs, docsBefore, "no member rows survive the rollback")
	assert.Len(t, f.store.copies, 2, "copied assets stay behind")
}

func TestImportSectionRequiresIDAndName(t *testing.T) {
	f := newFixture()

	for _, source := range []docsysSvc.SourceSection{
		{Name: "No id"},
		{ID: "no-name"},
		{},
	} {
		_, err := f.svc.ImportSection(context.Background(), &docsysSvc.ImportSectionRequest{
			Source:          source,
			SourceType:      models.DestinationLibrary,
			SourceID:        "lib-1",
			DestinationType: models.DestinationProject,
			DestinationID:   "proj-1",
		})
		require.ErrorIs(t, err, domain.ErrInvalidSourceSection)
	}
	assert.Empty(t, f.store.copies)
}

func TestImportSectionEmptySource(t *testing.T) {
	f := newFixture()

	newSectionID, err := f.svc.ImportSection(context.Background(), &docsysSvc.ImportSectionRequest{
		Source:          docsysSvc.SourceSection{ID: "src-sec", Name: "Empty"},
		SourceType:      models.DestinationProject,
		SourceID:        "proj-src",
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)

	require.Len(t, f.sections.sections, 1)
	assert.Equal(t, newSectionID, f.sections.sections[0].ID)
	assert.Empty(t, f.docs.docs, "an empty section imports as just the section row")
}

func TestImportItemsIsolatesFailures(t *testing.T) {
	f := newFixture()
	seedDoc(f, models.Document{ID: "s1", LibraryID: strptr("lib-1"), SectionID: strptr("src-sec"), Order: 1000})
	f.store.failRef = "documents/bad/broken.pdf"

	result, err := f.svc.ImportItems(context.Background(), &docsysSvc.ImportItemsRequest{
		Items: []docsysSvc.ImportItem{
			{
				Kind:      docsysSvc.ImportItemSection,
				Section:   &docsysSvc.SourceSection{ID: "src-sec", Name: "Procedures"},
				LibraryID: "lib-1",
			},
			{
				Kind:     docsysSvc.ImportItemDocument,
				Document: &docsysSvc.SourceDocument{ID: "bad", StorageRef: "documents/bad/broken.pdf"},
			},
			{
				Kind:     docsysSvc.ImportItemDocument,
				Document: &docsysSvc.SourceDocument{ID: "good", Title: "Good"},
			},
		},
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)

	assert.Len(t, result.Sections, 1)
	assert.Len(t, result.Documents, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad", result.Errors[0].Item.Document.ID)
	assert.Equal(t, "Good", result.Documents[0].Title)
}

func TestImportItemsSectionsNotSupportedOnFlatDestination(t *testing.T) {
	f := newFixture()

	result, err := f.svc.ImportItems(context.Background(), &docsysSvc.ImportItemsRequest{
		Items: []docsysSvc.ImportItem{
			{
				Kind:      docsysSvc.ImportItemSection,
				Section:   &docsysSvc.SourceSection{ID: "src-sec", Name: "Procedures"},
				ProjectID: "proj-src",
			},
			{
				Kind:     docsysSvc.ImportItemDocument,
				Document: &docsysSvc.SourceDocument{Title: "Weld photo"},
			},
		},
		DestinationType: models.DestinationWeldLog,
		DestinationID:   "wl-1",
		Context:         docsysSvc.ImportContext{ProjectID: "proj-1"},
		Actor:           "user-1",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Sections)
	assert.Len(t, result.Documents, 1, "documents still import alongside the rejected section")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "sections are not supported")
	assert.Empty(t, f.sections.sections)
}

func TestImportItemsInvalidDestinationPropagates(t *testing.T) {
	f := newFixture()

	result, err := f.svc.ImportItems(context.Background(), &docsysSvc.ImportItemsRequest{
		Items: []docsysSvc.ImportItem{
			{Kind: docsysSvc.ImportItemDocument, Document: &docsysSvc.SourceDocument{Title: "Doc"}},
		},
		DestinationType: "folder",
		DestinationID:   "f-1",
	})
	require.True(t, errors.Is(err, domain.ErrInvalidDestinationType))
	assert.Nil(t, result)
}

func TestImportItemsDocumentTargetSectionFallback(t *testing.T) {
	f := newFixture()

	result, err := f.svc.ImportItems(context.Background(), &docsysSvc.ImportItemsRequest{
		Items: []docsysSvc.ImportItem{
			{
				Kind:      docsysSvc.ImportItemDocument,
				Document:  &docsysSvc.SourceDocument{Title: "Doc"},
				SectionID: strptr("sec-src"),
			},
		},
		DestinationType: models.DestinationProject,
		DestinationID:   "proj-1",
		Actor:           "user-1",
	})
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)

	doc, err := f.docs.GetByID(context.Background(), result.Documents[0].ID)
	require.NoError(t, err)
	require.NotNil(t, doc.SectionID)
	assert.Equal(t, "sec-src", *doc.SectionID, "falls back to the item's own section id")
}
