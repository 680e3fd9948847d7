package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	docsysRepo "docweld/internal/domain/repositories/docsystem"

	"docweld/internal/repository/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentColumns = `id, title, file_type, file_size, section_id,
		project_id, library_id, weld_log_id, weld_id,
		storage_ref, thumb_storage_ref, doc_order, status, processing_state,
		imported_from, imported_at, created_at, created_by, updated_at, updated_by`

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *postgres.RepositoryConfig) docsysRepo.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new document row as a single atomic write
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`, r.tables.Documents, documentColumns)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		doc.ID,
		doc.Title,
		doc.FileType,
		doc.FileSize,
		doc.SectionID,
		doc.ProjectID,
		doc.LibraryID,
		doc.WeldLogID,
		doc.WeldID,
		doc.StorageRef,
		doc.ThumbStorageRef,
		doc.Order,
		doc.Status,
		doc.ProcessingState,
		doc.ImportedFrom,
		doc.ImportedAt,
		doc.CreatedAt,
		doc.CreatedBy,
		doc.UpdatedAt,
		doc.UpdatedBy,
	)

	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("document %s already exists", doc.ID),
				ResourceType: "document",
				ResourceID:   doc.ID,
			}
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// GetByID retrieves an active document by id
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND status = $2
	`, documentColumns, r.tables.Documents)

	executor := postgres.GetExecutor(ctx, r.pool)
	doc, err := scanDocument(executor.QueryRow(ctx, query, id, models.StatusActive))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return doc, nil
}

// HighestOrder returns the maximum order value among active documents in the
// scope, querying sorted descending limited to one row
func (r *PostgresDocumentRepository) HighestOrder(ctx context.Context, scope docsysRepo.DocumentScope) (int64, bool, error) {
	conds, args, err := scopeConditions(scope)
	if err != nil {
		return 0, false, err
	}

	query := fmt.Sprintf(`
		SELECT doc_order
		FROM %s
		WHERE %s
		ORDER BY doc_order DESC
		LIMIT 1
	`, r.tables.Documents, joinConditions(conds))

	var order int64
	executor := postgres.GetExecutor(ctx, r.pool)
	err = executor.QueryRow(ctx, query, args...).Scan(&order)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query highest document order: %w", err)
	}

	return order, true, nil
}

// ListActive lists active documents in the scope ordered ascending by order
func (r *PostgresDocumentRepository) ListActive(ctx context.Context, scope docsysRepo.DocumentScope) ([]models.Document, error) {
	conds, args, err := scopeConditions(scope)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY doc_order ASC
	`, documentColumns, r.tables.Documents, joinConditions(conds))

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// Update persists title and order changes to an existing document
func (r *PostgresDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, doc_order = $2, updated_at = $3, updated_by = $4
		WHERE id = $5 AND status = $6
	`, r.tables.Documents)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		doc.Title,
		doc.Order,
		doc.UpdatedAt,
		doc.UpdatedBy,
		doc.ID,
		models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete flips the document's status to deleted
func (r *PostgresDocumentRepository) SoftDelete(ctx context.Context, id, actor string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = $2, updated_by = $3
		WHERE id = $4 AND status = $5
	`, r.tables.Documents)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		models.StatusDeleted,
		time.Now().UTC(),
		actor,
		id,
		models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scopeConditions builds WHERE conditions for a document scope. A scope with
// no keys at all is malformed (usually a missing import context field) and
// rejected before touching the database.
func scopeConditions(scope docsysRepo.DocumentScope) ([]string, []interface{}, error) {
	var conds []string
	var args []interface{}

	appendKey := func(column, value string) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if scope.Keys.ProjectID != "" {
		appendKey("project_id", scope.Keys.ProjectID)
	}
	if scope.Keys.LibraryID != "" {
		appendKey("library_id", scope.Keys.LibraryID)
	}
	if scope.Keys.WeldLogID != "" {
		appendKey("weld_log_id", scope.Keys.WeldLogID)
	}
	if scope.Keys.WeldID != "" {
		appendKey("weld_id", scope.Keys.WeldID)
	}

	if len(conds) == 0 {
		return nil, nil, fmt.Errorf("%w: document scope has no keys", domain.ErrValidation)
	}

	args = append(args, models.StatusActive)
	conds = append(conds, fmt.Sprintf("status = $%d", len(args)))

	if scope.FilterBySection {
		if scope.SectionID != nil {
			args = append(args, *scope.SectionID)
			conds = append(conds, fmt.Sprintf("section_id = $%d", len(args)))
		} else {
			conds = append(conds, "section_id IS NULL")
		}
	}

	return conds, args, nil
}

func joinConditions(conds []string) string {
	joined := conds[0]
	for _, c := range conds[1:] {
		joined += " AND " + c
	}
	return joined
}

// scanDocument reads one document row
func scanDocument(row pgx.Row) (*models.Document, error) {
	var doc models.Document
	err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.FileType,
		&doc.FileSize,
		&doc.SectionID,
		&doc.ProjectID,
		&doc.LibraryID,
		&doc.WeldLogID,
		&doc.WeldID,
		&doc.StorageRef,
		&doc.ThumbStorageRef,
		&doc.Order,
		&doc.Status,
		&doc.ProcessingState,
		&doc.ImportedFrom,
		&doc.ImportedAt,
		&doc.CreatedAt,
		&doc.CreatedBy,
		&doc.UpdatedAt,
		&doc.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
