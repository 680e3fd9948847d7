package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docweld/internal/domain"
	models "docweld/internal/domain/models/docsystem"
	"docweld/internal/domain/repositories"
	docsysRepo "docweld/internal/domain/repositories/docsystem"

	"docweld/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *postgres.RepositoryConfig) docsysRepo.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, status, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.Status,
		project.CreatedAt,
		project.CreatedBy,
		project.UpdatedAt,
		project.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project '%s' already exists", project.Name),
				ResourceType: "project",
				ResourceID:   project.ID,
			}
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE id = $1 AND status = $2
	`, r.tables.Projects)

	var p models.Project
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, models.StatusActive).Scan(
		&p.ID, &p.Name, &p.Description, &p.Status,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE status = $1
		ORDER BY created_at DESC
	`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Status,
			&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = $3, updated_by = $4
		WHERE id = $5 AND status = $6
	`, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		project.Name, project.Description, project.UpdatedAt, project.UpdatedBy,
		project.ID, models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresProjectRepository) SoftDelete(ctx context.Context, id, actor string) error {
	return softDeleteRow(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.Projects, "project", id, actor)
}

// PostgresLibraryRepository implements the LibraryRepository interface
type PostgresLibraryRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(config *postgres.RepositoryConfig) docsysRepo.LibraryRepository {
	return &PostgresLibraryRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

func (r *PostgresLibraryRepository) Create(ctx context.Context, library *models.Library) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, status, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Libraries)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		library.ID,
		library.Name,
		library.Description,
		library.Status,
		library.CreatedAt,
		library.CreatedBy,
		library.UpdatedAt,
		library.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("library '%s' already exists", library.Name),
				ResourceType: "library",
				ResourceID:   library.ID,
			}
		}
		return fmt.Errorf("create library: %w", err)
	}

	return nil
}

func (r *PostgresLibraryRepository) GetByID(ctx context.Context, id string) (*models.Library, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE id = $1 AND status = $2
	`, r.tables.Libraries)

	var l models.Library
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, models.StatusActive).Scan(
		&l.ID, &l.Name, &l.Description, &l.Status,
		&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("library %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get library: %w", err)
	}

	return &l, nil
}

func (r *PostgresLibraryRepository) List(ctx context.Context) ([]models.Library, error) {
	query := fmt.Sprintf(`
		SELECT id, name, description, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE status = $1
		ORDER BY name ASC
	`, r.tables.Libraries)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	defer rows.Close()

	var libraries []models.Library
	for rows.Next() {
		var l models.Library
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Description, &l.Status,
			&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan library: %w", err)
		}
		libraries = append(libraries, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	return libraries, nil
}

func (r *PostgresLibraryRepository) Update(ctx context.Context, library *models.Library) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = $3, updated_by = $4
		WHERE id = $5 AND status = $6
	`, r.tables.Libraries)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		library.Name, library.Description, library.UpdatedAt, library.UpdatedBy,
		library.ID, models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("update library: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("library %s: %w", library.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresLibraryRepository) SoftDelete(ctx context.Context, id, actor string) error {
	return softDeleteRow(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.Libraries, "library", id, actor)
}

// PostgresWeldLogRepository implements the WeldLogRepository interface
type PostgresWeldLogRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewWeldLogRepository creates a new weld log repository
func NewWeldLogRepository(config *postgres.RepositoryConfig) docsysRepo.WeldLogRepository {
	return &PostgresWeldLogRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

func (r *PostgresWeldLogRepository) Create(ctx context.Context, weldLog *models.WeldLog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, name, status, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.WeldLogs)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		weldLog.ID,
		weldLog.ProjectID,
		weldLog.Name,
		weldLog.Status,
		weldLog.CreatedAt,
		weldLog.CreatedBy,
		weldLog.UpdatedAt,
		weldLog.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", weldLog.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create weld log: %w", err)
	}

	return nil
}

func (r *PostgresWeldLogRepository) GetByID(ctx context.Context, id string) (*models.WeldLog, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, name, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE id = $1 AND status = $2
	`, r.tables.WeldLogs)

	var w models.WeldLog
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, models.StatusActive).Scan(
		&w.ID, &w.ProjectID, &w.Name, &w.Status,
		&w.CreatedAt, &w.CreatedBy, &w.UpdatedAt, &w.UpdatedBy,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, fmt.Errorf("weld log %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get weld log: %w", err)
	}

	return &w, nil
}

func (r *PostgresWeldLogRepository) ListByProject(ctx context.Context, projectID string) ([]models.WeldLog, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, name, status, created_at, created_by, updated_at, updated_by
		FROM %s
		WHERE project_id = $1 AND status = $2
		ORDER BY created_at ASC
	`, r.tables.WeldLogs)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list weld logs: %w", err)
	}
	defer rows.Close()

	var weldLogs []models.WeldLog
	for rows.Next() {
		var w models.WeldLog
		if err := rows.Scan(
			&w.ID, &w.ProjectID, &w.Name, &w.Status,
			&w.CreatedAt, &w.CreatedBy, &w.UpdatedAt, &w.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan weld log: %w", err)
		}
		weldLogs = append(weldLogs, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list weld logs: %w", err)
	}

	return weldLogs, nil
}

func (r *PostgresWeldLogRepository) Update(ctx context.Context, weldLog *models.WeldLog) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = $2, updated_by = $3
		WHERE id = $4 AND status = $5
	`, r.tables.WeldLogs)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query,
		weldLog.Name, weldLog.UpdatedAt, weldLog.UpdatedBy,
		weldLog.ID, models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("update weld log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("weld log %s: %w", weldLog.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresWeldLogRepository) SoftDelete(ctx context.Context, id, actor string) error {
	return softDeleteRow(ctx, postgres.GetExecutor(ctx, r.pool), r.tables.WeldLogs, "weld log", id, actor)
}

// softDeleteRow flips one container row's status to deleted
func softDeleteRow(ctx context.Context, executor repositories.DBTX, table, kind, id, actor string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = $2, updated_by = $3
		WHERE id = $4 AND status = $5
	`, table)

	tag, err := executor.Exec(ctx, query,
		models.StatusDeleted,
		time.Now().UTC(),
		actor,
		id,
		models.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	return nil
}
