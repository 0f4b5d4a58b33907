package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/tracedash/tracedash/internal/db/models"
)

func newProjectRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewProjectRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func projectRows(t *testing.T, projects ...models.Project) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{"id", "organization_id", "slug", "name", "platform", "created_at", "updated_at"})
	for _, p := range projects {
		rows.AddRow(p.ID, p.OrganizationID, p.Slug, p.Name, p.Platform, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

// ---------------------------------------------------------------------------
// ListByOrganization
// ---------------------------------------------------------------------------

func TestProjectRepo_ListByOrganization(t *testing.T) {
	repo, mock := newProjectRepo(t)
	now := time.Now()
	mock.ExpectQuery("SELECT id, organization_id, slug, name, platform").
		WithArgs("org-1").
		WillReturnRows(projectRows(t,
			models.Project{ID: "1", OrganizationID: "org-1", Slug: "backend", Name: "Backend", Platform: "go", CreatedAt: now, UpdatedAt: now},
			models.Project{ID: "2", OrganizationID: "org-1", Slug: "frontend", Name: "Frontend", Platform: "javascript", CreatedAt: now, UpdatedAt: now},
		))

	projects, err := repo.ListByOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("ListByOrganization returned %d, want 2", len(projects))
	}
	if projects[0].Slug != "backend" {
		t.Errorf("projects[0].Slug = %q, want backend", projects[0].Slug)
	}
}

func TestProjectRepo_ListByOrganization_Empty(t *testing.T) {
	repo, mock := newProjectRepo(t)
	mock.ExpectQuery("SELECT id, organization_id, slug, name, platform").
		WithArgs("org-1").
		WillReturnRows(projectRows(t))

	projects, err := repo.ListByOrganization(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("ListByOrganization: %v", err)
	}
	if projects == nil {
		t.Error("ListByOrganization should return an empty slice, not nil")
	}
	if len(projects) != 0 {
		t.Errorf("ListByOrganization returned %d, want 0", len(projects))
	}
}

// ---------------------------------------------------------------------------
// GetBySlug
// ---------------------------------------------------------------------------

func TestProjectRepo_GetBySlug_Found(t *testing.T) {
	repo, mock := newProjectRepo(t)
	now := time.Now()
	mock.ExpectQuery("SELECT id, organization_id, slug, name, platform").
		WithArgs("org-1", "backend").
		WillReturnRows(projectRows(t,
			models.Project{ID: "1", OrganizationID: "org-1", Slug: "backend", Name: "Backend", Platform: "go", CreatedAt: now, UpdatedAt: now},
		))

	p, err := repo.GetBySlug(context.Background(), "org-1", "backend")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if p == nil || p.Slug != "backend" {
		t.Errorf("GetBySlug returned %+v, want slug backend", p)
	}
}

func TestProjectRepo_GetBySlug_NotFound(t *testing.T) {
	repo, mock := newProjectRepo(t)
	mock.ExpectQuery("SELECT id, organization_id, slug, name, platform").
		WithArgs("org-1", "ghost").
		WillReturnRows(projectRows(t))

	p, err := repo.GetBySlug(context.Background(), "org-1", "ghost")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if p != nil {
		t.Errorf("GetBySlug returned %+v, want nil for missing project", p)
	}
}

func TestProjectRepo_GetBySlug_QueryError(t *testing.T) {
	repo, mock := newProjectRepo(t)
	mock.ExpectQuery("SELECT id, organization_id, slug, name, platform").
		WillReturnError(errors.New("db down"))

	if _, err := repo.GetBySlug(context.Background(), "org-1", "backend"); err == nil {
		t.Error("GetBySlug should propagate query errors")
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProjectRepo_Create_FillsGeneratedFields(t *testing.T) {
	repo, mock := newProjectRepo(t)
	now := time.Now()
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("org-1", "backend", "Backend", "go").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("generated-id", now, now))

	p := &models.Project{OrganizationID: "org-1", Slug: "backend", Name: "Backend", Platform: "go"}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != "generated-id" {
		t.Errorf("Create should fill the generated ID, got %q", p.ID)
	}
}
