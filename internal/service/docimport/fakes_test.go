package docimport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	"docweld/internal/domain/repositories"
	docsysRepo "docweld/internal/domain/repositories/docsystem"
)

// fakeObjectStore records copies in order and can fail on one source ref
type fakeObjectStore struct {
	copies  map[string]string // dest -> source
	order   []string
	failRef string
}

func (f *fakeObjectStore) Copy(ctx context.Context, sourcePath, destPath string) error {
	if f.failRef != "" && sourcePath == f.failRef {
		return errors.New("copy refused")
	}
	if f.copies == nil {
		f.copies = make(map[string]string)
	}
	f.copies[destPath] = sourcePath
	f.order = append(f.order, destPath)
	return nil
}

func (f *fakeObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	return "https://storage.test/" + key, nil
}

// fakeDocRepo is an in-memory DocumentRepository. failOnCreate makes the
// nth Create call fail (1-based).
type fakeDocRepo struct {
	docs         []models.Document
	creates      int
	failOnCreate int
}

func (r *fakeDocRepo) Create(ctx context.Context, doc *models.Document) error {
	r.creates++
	if r.failOnCreate > 0 && r.creates == r.failOnCreate {
		return errors.New("insert failed")
	}
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *fakeDocRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	for i := range r.docs {
		if r.docs[i].ID == id && r.docs[i].Status == models.StatusActive {
			doc := r.docs[i]
			return &doc, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}

func (r *fakeDocRepo) HighestOrder(ctx context.Context, scope docsysRepo.DocumentScope) (int64, bool, error) {
	if scope.Keys == (models.ScopeKeys{}) {
		return 0, false, fmt.Errorf("%w: document scope has no keys", domain.ErrValidation)
	}
	var highest int64
	exists := false
	for i := range r.docs {
		if !matchScope(&r.docs[i], scope) {
			continue
		}
		if !exists || r.docs[i].Order > highest {
			highest = r.docs[i].Order
		}
		exists = true
	}
	return highest, exists, nil
}

func (r *fakeDocRepo) ListActive(ctx context.Context, scope docsysRepo.DocumentScope) ([]models.Document, error) {
	if scope.Keys == (models.ScopeKeys{}) {
		return nil, fmt.Errorf("%w: document scope has no keys", domain.ErrValidation)
	}
	var out []models.Document
	for i := range r.docs {
		if matchScope(&r.docs[i], scope) {
			out = append(out, r.docs[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeDocRepo) Update(ctx context.Context, doc *models.Document) error {
	for i := range r.docs {
		if r.docs[i].ID == doc.ID {
			r.docs[i] = *doc
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeDocRepo) SoftDelete(ctx context.Context, id, actor string) error {
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs[i].Status = models.StatusDeleted
			return nil
		}
	}
	return domain.ErrNotFound
}

func matchScope(doc *models.Document, scope docsysRepo.DocumentScope) bool {
	if doc.Status != models.StatusActive {
		return false
	}
	k := scope.Keys
	if k.ProjectID != "" && (doc.ProjectID == nil || *doc.ProjectID != k.ProjectID) {
		return false
	}
	if k.LibraryID != "" && (doc.LibraryID == nil || *doc.LibraryID != k.LibraryID) {
		return false
	}
	if k.WeldLogID != "" && (doc.WeldLogID == nil || *doc.WeldLogID != k.WeldLogID) {
		return false
	}
	if k.WeldID != "" && (doc.WeldID == nil || *doc.WeldID != k.WeldID) {
		return false
	}
	if scope.FilterBySection {
		if scope.SectionID == nil {
			return doc.SectionID == nil
		}
		return doc.SectionID != nil && *doc.SectionID == *scope.SectionID
	}
	return true
}

// fakeSectionRepo is an in-memory SectionRepository
type fakeSectionRepo struct {
	sections     []models.Section
	creates      int
	failOnCreate int
}

func (r *fakeSectionRepo) Create(ctx context.Context, section *models.Section) error {
	r.creates++
	if r.failOnCreate > 0 && r.creates == r.failOnCreate {
		return errors.New("insert failed")
	}
	r.sections = append(r.sections, *section)
	return nil
}

func (r *fakeSectionRepo) GetByID(ctx context.Context, id string) (*models.Section, error) {
	for i := range r.sections {
		if r.sections[i].ID == id && r.sections[i].Status == models.StatusActive {
			section := r.sections[i]
			return &section, nil
		}
	}
	return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
}

func (r *fakeSectionRepo) HighestOrder(ctx context.Context, keys models.ScopeKeys) (int64, bool, error) {
	var highest int64
	exists := false
	for i := range r.sections {
		if !matchSectionKeys(&r.sections[i], keys) {
			continue
		}
		if !exists || r.sections[i].Order > highest {
			highest = r.sections[i].Order
		}
		exists = true
	}
	return highest, exists, nil
}

func (r *fakeSectionRepo) ListActive(ctx context.Context, keys models.ScopeKeys) ([]models.Section, error) {
	var out []models.Section
	for i := range r.sections {
		if matchSectionKeys(&r.sections[i], keys) {
			out = append(out, r.sections[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeSectionRepo) Update(ctx context.Context, section *models.Section) error {
	for i := range r.sections {
		if r.sections[i].ID == section.ID {
			r.sections[i] = *section
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSectionRepo) SoftDelete(ctx context.Context, id, actor string) error {
	for i := range r.sections {
		if r.sections[i].ID == id {
			r.sections[i].Status = models.StatusDeleted
			return nil
		}
	}
	return domain.ErrNotFound
}

func matchSectionKeys(section *models.Section, keys models.ScopeKeys) bool {
	if section.Status != models.StatusActive {
		return false
	}
	if keys.ProjectID != "" && (section.ProjectID == nil || *section.ProjectID != keys.ProjectID) {
		return false
	}
	if keys.LibraryID != "" && (section.LibraryID == nil || *section.LibraryID != keys.LibraryID) {
		return false
	}
	return true
}

// fakeTxManager snapshots both repos and restores them when fn fails,
// mimicking a rolled-back transaction.
type fakeTxManager struct {
	docs     *fakeDocRepo
	sections *fakeSectionRepo
}

var _ repositories.TransactionManager = (*fakeTxManager)(nil)

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	docsSnap := append([]models.Document(nil), m.docs.docs...)
	sectionsSnap := append([]models.Section(nil), m.sections.sections...)

	if err := fn(ctx); err != nil {
		m.docs.docs = docsSnap
		m.sections.sections = sectionsSnap
		return err
	}
	return nil
}
