package docimport

import (
	"testing"
	"time"

	models "docweld/internal/domain/models/docsystem"
	docsysSvc "docweld/internal/domain/services/docsystem"
)

func TestDeriveFileType(t *testing.T) {
	tests := []struct {
		name       string
		fileType   string
		storageRef string
		want       string
	}{
		{name: "explicit type wins", fileType: "PDF", storageRef: "documents/a/report.docx", want: "PDF"},
		{name: "extension uppercased", storageRef: "documents/a/report.pdf", want: "PDF"},
		{name: "no extension falls back", storageRef: "documents/a/report", want: "FILE"},
		{name: "no ref falls back", want: "FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveFileType(tt.fileType, tt.storageRef); got != tt.want {
				t.Errorf("deriveFileType(%q, %q) = %q, want %q", tt.fileType, tt.storageRef, got, tt.want)
			}
		})
	}
}

func TestPrepareNewDocumentDataDefaults(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	dest := models.Destination{
		Type: models.DestinationProject,
		Keys: models.ScopeKeys{ProjectID: "proj-1"},
	}
	sectionID := "sec-1"

	doc := prepareNewDocumentData(
		&docsysSvc.SourceDocument{ID: "src-1"},
		"new-1", dest, &sectionID, 2000, copiedRefs{}, "user-1", now,
	)

	if doc.Title != "Untitled Document" {
		t.Errorf("Title = %q, want fallback", doc.Title)
	}
	if doc.FileType != "FILE" {
		t.Errorf("FileType = %q, want FILE", doc.FileType)
	}
	if doc.FileSize != 0 {
		t.Errorf("FileSize = %d, want 0", doc.FileSize)
	}
	if doc.Status != models.StatusActive || doc.ProcessingState != models.StateCompleted {
		t.Errorf("status = %q/%q, want active/completed", doc.Status, doc.ProcessingState)
	}
	if doc.ImportedFrom == nil || *doc.ImportedFrom != "src-1" {
		t.Errorf("ImportedFrom = %v, want src-1", doc.ImportedFrom)
	}
	if doc.ImportedAt == nil || !doc.ImportedAt.Equal(now) {
		t.Errorf("ImportedAt = %v, want %v", doc.ImportedAt, now)
	}
	if doc.SectionID == nil || *doc.SectionID != "sec-1" {
		t.Errorf("SectionID = %v, want sec-1", doc.SectionID)
	}
	if doc.ProjectID == nil || *doc.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %v, want proj-1", doc.ProjectID)
	}
	if doc.LibraryID != nil || doc.WeldLogID != nil || doc.WeldID != nil {
		t.Error("unrelated scope keys must stay nil")
	}
}

func TestPrepareNewDocumentDataFlatDestination(t *testing.T) {
	now := time.Now()
	dest := models.Destination{
		Type: models.DestinationWeldLog,
		Keys: models.ScopeKeys{WeldLogID: "wl-1", ProjectID: "proj-1"},
	}
	sectionID := "sec-1"

	doc := prepareNewDocumentData(
		&docsysSvc.SourceDocument{Title: "WPS"},
		"new-1", dest, &sectionID, 1000, copiedRefs{}, "user-1", now,
	)

	if doc.SectionID != nil {
		t.Errorf("SectionID = %v, want nil for flat destination", *doc.SectionID)
	}
	if doc.WeldLogID == nil || *doc.WeldLogID != "wl-1" {
		t.Errorf("WeldLogID = %v, want wl-1", doc.WeldLogID)
	}
	if doc.ProjectID == nil || *doc.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %v, want proj-1", doc.ProjectID)
	}
}

func TestPrepareNewSectionData(t *testing.T) {
	now := time.Now()
	dest := models.Destination{
		Type: models.DestinationLibrary,
		Keys: models.ScopeKeys{LibraryID: "lib-1"},
	}

	section := prepareNewSectionData(
		&docsysSvc.SourceSection{ID: "src-sec", Name: "Certificates", Description: "Welder certs"},
		"new-sec", dest, 3000, "user-1", now,
	)

	if section.Name != "Certificates" || section.Description != "Welder certs" {
		t.Errorf("section = %q/%q", section.Name, section.Description)
	}
	if section.LibraryID == nil || *section.LibraryID != "lib-1" {
		t.Errorf("LibraryID = %v, want lib-1", section.LibraryID)
	}
	if section.ProjectID != nil {
		t.Error("ProjectID must stay nil for library destination")
	}
	if section.ImportedFrom == nil || *section.ImportedFrom != "src-sec" {
		t.Errorf("ImportedFrom = %v, want src-sec", section.ImportedFrom)
	}
	if section.Order != 3000 {
		t.Errorf("Order = %d, want 3000", section.Order)
	}
}

func TestDestAssetPath(t *testing.T) {
	got := destAssetPath("new-1", "documents/old-1/report.pdf")
	if got != "documents/new-1/report.pdf" {
		t.Errorf("destAssetPath = %q", got)
	}
}
