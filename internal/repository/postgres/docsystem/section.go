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

const sectionColumns = `id, name, description, project_id, library_id,
		section_order, status, imported_from, imported_at,
		created_at, created_by, updated_at, updated_by`

// PostgresSectionRepository implements the SectionRepository interface
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *postgres.RepositoryConfig) docsysRepo.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new section row. The caller supplies the id.
func (r *PostgresSectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, r.tables.Sections, sectionColumns)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		section.ID,
		section.Name,
		section.Description,
		section.ProjectID,
		section.LibraryID,
		section.Order,
		section.Status,
		section.ImportedFrom,
		section.ImportedAt,
		section.CreatedAt,
		section.CreatedBy,
		section.UpdatedAt,
		section.UpdatedBy,
	)

	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("section %s already exists", section.ID),
				ResourceType: "section",
				ResourceID:   section.ID,
			}
		}
		return fmt.Errorf("create section: %w", err)
	}

	return nil
}

// GetByID retrieves an active section by id
func (r *PostgresSectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND status = $2
	`, sectionColumns, r.tables.Sections)

	executor := postgres.GetExecutor(ctx, r.pool)
	section, err := scanSection(executor.QueryRow(ctx, query, id, models.StatusActive))
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return section, nil
}

// HighestOrder returns the maximum order value among active sections in the
// container scope; false when the scope is empty
func (r *PostgresSectionRepository) HighestOrder(ctx context.Context, keys models.ScopeKeys) (int64, bool, error) {
	cond, arg, err := sectionContainerCondition(keys)
	if err != nil {
		return 0, false, err
	}

	query := fmt.Sprintf(`
		SELECT section_order
		FROM %s
		WHERE %s = $1 AND status = $2
		ORDER BY section_order DESC
		LIMIT 1
	`, r.tables.Sections, cond)

	var order int64
	executor := postgres.GetExecutor(ctx, r.pool)
	err = executor.QueryRow(ctx, query, arg, models.StatusActive).Scan(&order)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query highest section order: %w", err)
	}

	return order, true, nil
}

// ListActive lists active sections in the container ordered ascending
func (r *PostgresSectionRepository) ListActive(ctx context.Context, keys models.ScopeKeys) ([]models.Section, error) {
	cond, arg, err := sectionContainerCondition(keys)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND status = $2
		ORDER BY section_order ASC
	`, sectionColumns, r.tables.Sections, cond)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, arg, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, *section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	return sections, nil
}

// Update persists name, description and order changes
func (r *PostgresSectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, section_order = $3, updated_at = $4, updated_by = $5
		WHERE id = $6 AND status = $7
	`, r.tables.Sections)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		section.Name,
		section.Description,
		section.Order,
		section.UpdatedAt,
		section.UpdatedBy,
		section.ID,
		models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", section.ID, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete flips the section's status to deleted
func (r *PostgresSectionRepository) SoftDelete(ctx context.Context, id, actor string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = $2, updated_by = $3
		WHERE id = $4 AND status = $5
	`, r.tables.Sections)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		models.StatusDeleted,
		time.Now().UTC(),
		actor,
		id,
		models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// sectionContainerCondition maps the scope keys to the single container
// column sections are scoped by. Sections only exist in projects and
// libraries.
func sectionContainerCondition(keys models.ScopeKeys) (string, string, error) {
	switch {
	case keys.ProjectID != "":
		return "project_id", keys.ProjectID, nil
	case keys.LibraryID != "":
		return "library_id", keys.LibraryID, nil
	default:
		return "", "", fmt.Errorf("%w: section scope needs a project or library id", domain.ErrValidation)
	}
}

// scanSection reads one section row
func scanSection(row pgx.Row) (*models.Section, error) {
	var section models.Section
	err := row.Scan(
		&section.ID,
		&section.Name,
		&section.Description,
		&section.ProjectID,
		&section.LibraryID,
		&section.Order,
		&section.Status,
		&section.ImportedFrom,
		&section.ImportedAt,
		&section.CreatedAt,
		&section.CreatedBy,
		&section.UpdatedAt,
		&section.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &section, nil
}
