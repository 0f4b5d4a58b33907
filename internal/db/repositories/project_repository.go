// project_repository.go implements ProjectRepository, providing database queries for
// projects scoped to their owning organization.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tracedash/tracedash/internal/db/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByOrganization retrieves all projects of an organization ordered by slug
func (r *ProjectRepository) ListByOrganization(ctx context.Context, orgID string) ([]models.Project, error) {
	query := `
		SELECT id, organization_id, slug, name, platform, created_at, updated_at
		FROM projects
		WHERE organization_id = $1
		ORDER BY slug
	`

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, orgID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// GetBySlug retrieves a project by organization ID and project slug.
// Returns nil when not found.
func (r *ProjectRepository) GetBySlug(ctx context.Context, orgID, slug string) (*models.Project, error) {
	query := `
		SELECT id, organization_id, slug, name, platform, created_at, updated_at
		FROM projects
		WHERE organization_id = $1 AND slug = $2
	`

	project := &models.Project{}
	err := r.db.GetContext(ctx, project, query, orgID, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// Create inserts a new project, filling in its generated ID and timestamps
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (organization_id, slug, name, platform)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, p.OrganizationID, p.Slug, p.Name, p.Platform).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}
