package fixtures

import (
	"reflect"
	"testing"

	"github.com/tracedash/tracedash/internal/db/models"
)

// ---------------------------------------------------------------------------
// Project fixture
// ---------------------------------------------------------------------------

func TestProject_Defaults(t *testing.T) {
	p := Project(nil)
	if p.Slug != "project-slug" {
		t.Errorf("Slug = %q, want project-slug", p.Slug)
	}
	if p.ID == "" {
		t.Error("ID should be generated when not supplied")
	}
	if !p.IsMember || !p.HasAccess {
		t.Error("default project should be a member project with access")
	}
}

func TestProject_Overrides(t *testing.T) {
	p := Project(&ProjectOverrides{ID: "42", Slug: "backend", Platform: "go"})
	if p.ID != "42" {
		t.Errorf("ID = %q, want 42", p.ID)
	}
	if p.Slug != "backend" {
		t.Errorf("Slug = %q, want backend", p.Slug)
	}
	if p.Platform != "go" {
		t.Errorf("Platform = %q, want go", p.Platform)
	}
	if p.Name != "Project Name" {
		t.Errorf("Name = %q, want default to survive a partial override", p.Name)
	}
}

func TestProject_PartialOverrideKeepsBooleanDefaults(t *testing.T) {
	p := Project(&ProjectOverrides{Slug: "p2"})
	if !p.IsMember || !p.HasAccess {
		t.Error("a partial override should not clear the IsMember/HasAccess defaults")
	}
}

func TestProject_ExplicitFalseWins(t *testing.T) {
	f := false
	p := Project(&ProjectOverrides{IsMember: &f})
	if p.IsMember {
		t.Error("an explicitly supplied false should override the default")
	}
	if !p.HasAccess {
		t.Error("the untouched boolean should keep its default")
	}
}

func TestProject_FreshIDPerCall(t *testing.T) {
	a := Project(nil)
	b := Project(nil)
	if a.ID == b.ID {
		t.Error("two fixture projects without explicit IDs should not share one")
	}
}

// ---------------------------------------------------------------------------
// Organization fixture
// ---------------------------------------------------------------------------

func TestOrganization_Defaults(t *testing.T) {
	org := Organization(nil)
	if org.Slug != "org-slug" {
		t.Errorf("Slug = %q, want org-slug", org.Slug)
	}
	if len(org.OrgRoleList) == 0 || len(org.TeamRoleList) == 0 {
		t.Error("default organization should carry the default role lists")
	}
	if org.Features == nil || org.Access == nil || org.Projects == nil {
		t.Error("slice fields should be empty, not nil")
	}
}

func TestOrganization_CallerRoleListWins(t *testing.T) {
	custom := []models.Role{{ID: "billing", Name: "Billing"}}
	org := Organization(&models.Organization{OrgRoleList: custom})
	if len(org.OrgRoleList) != 1 || org.OrgRoleList[0].ID != "billing" {
		t.Errorf("OrgRoleList = %+v, want the caller-supplied list", org.OrgRoleList)
	}
	// The other list still gets its default.
	if len(org.TeamRoleList) != 2 {
		t.Errorf("TeamRoleList length = %d, want default of 2", len(org.TeamRoleList))
	}
}

func TestOrganization_Overrides(t *testing.T) {
	org := Organization(&models.Organization{Slug: "acme", Features: []string{"discover"}})
	if org.Slug != "acme" {
		t.Errorf("Slug = %q, want acme", org.Slug)
	}
	if !org.HasFeature("discover") {
		t.Error("caller-supplied features should be kept")
	}
	if org.Name != "Organization Name" {
		t.Errorf("Name = %q, want default to survive a partial override", org.Name)
	}
}

// ---------------------------------------------------------------------------
// Router fixture
// ---------------------------------------------------------------------------

func TestRouter_Defaults(t *testing.T) {
	r := Router(nil)
	if r.Location.Pathname != "/mock-pathname/" {
		t.Errorf("Pathname = %q, want /mock-pathname/", r.Location.Pathname)
	}
	if r.Params == nil || r.Routes == nil || r.Location.Query == nil {
		t.Error("router maps and slices should be empty, not nil")
	}
}

func TestRouter_ParamsMergeKeywise(t *testing.T) {
	r := Router(&models.Router{Params: map[string]string{"projectId": "backend"}})
	if r.Param("projectId") != "backend" {
		t.Errorf("Params = %v, want caller key preserved", r.Params)
	}
	if len(r.Params) != 1 {
		t.Errorf("Params = %v, want exactly the caller's keys", r.Params)
	}
}

func TestRouter_LocationOverride(t *testing.T) {
	r := Router(&models.Router{Location: models.Location{Pathname: "/issues/", Search: "?query=is%3Aunresolved"}})
	if r.Location.Pathname != "/issues/" {
		t.Errorf("Pathname = %q, want /issues/", r.Location.Pathname)
	}
	if r.Location.Query == nil {
		t.Error("Query default should survive a partial location override")
	}
}

// ---------------------------------------------------------------------------
// RouterContext fixture
// ---------------------------------------------------------------------------

func TestRouterContext_NoArgs(t *testing.T) {
	ctx := RouterContext()
	if ctx.Organization == nil || ctx.Project == nil || ctx.Router == nil {
		t.Fatal("RouterContext() should fill all entities with defaults")
	}
	if !reflect.DeepEqual(ctx.Location, ctx.Router.Location) {
		t.Error("context location should default to the router's location")
	}
}

func TestRouterContext_LaterEntriesWin(t *testing.T) {
	first := Organization(&models.Organization{Slug: "first"})
	second := Organization(&models.Organization{Slug: "second"})
	ctx := RouterContext(
		models.RoutingContext{Organization: &first},
		models.RoutingContext{Organization: &second},
	)
	if ctx.Organization.Slug != "second" {
		t.Errorf("Organization.Slug = %q, want the later entry to win", ctx.Organization.Slug)
	}
}
