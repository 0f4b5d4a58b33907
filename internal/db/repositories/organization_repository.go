// organization_repository.go implements OrganizationRepository, providing database
// queries for organization lookup, listing, creation, and membership management.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tracedash/tracedash/internal/db/models"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetBySlug retrieves an organization by its URL slug. Returns nil when not found.
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	query := `
		SELECT id, slug, name, created_at, updated_at
		FROM organizations
		WHERE slug = $1
	`

	org := &models.Organization{}
	err := r.db.GetContext(ctx, org, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// GetByID retrieves an organization by ID. Returns nil when not found.
func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	query := `
		SELECT id, slug, name, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	org := &models.Organization{}
	err := r.db.GetContext(ctx, org, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

// List retrieves organizations ordered by slug with limit/offset pagination
func (r *OrganizationRepository) List(ctx context.Context, limit, offset int) ([]models.Organization, error) {
	query := `
		SELECT id, slug, name, created_at, updated_at
		FROM organizations
		ORDER BY slug
		LIMIT $1 OFFSET $2
	`

	orgs := []models.Organization{}
	if err := r.db.SelectContext(ctx, &orgs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return orgs, nil
}

// Count returns the total number of organizations
func (r *OrganizationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM organizations`); err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return count, nil
}

// Create inserts a new organization, filling in its generated ID and timestamps
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (slug, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, org.Slug, org.Name).
		Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	return nil
}

// ListMembers retrieves all memberships of an organization
func (r *OrganizationRepository) ListMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error) {
	query := `
		SELECT organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY created_at
	`

	members := []models.OrganizationMember{}
	if err := r.db.SelectContext(ctx, &members, query, orgID); err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}

	return members, nil
}

// AddMember inserts a membership, updating the role if the user already belongs
func (r *OrganizationRepository) AddMember(ctx context.Context, m *models.OrganizationMember) error {
	query := `
		INSERT INTO organization_members (organization_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (organization_id, user_id) DO UPDATE SET role = EXCLUDED.role
	`

	if _, err := r.db.ExecContext(ctx, query, m.OrganizationID, m.UserID, m.Role); err != nil {
		return fmt.Errorf("failed to add organization member: %w", err)
	}

	return nil
}
