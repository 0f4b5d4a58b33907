// organization.go materializes Organization fixtures, including the default role lists
// an organization is provisioned with.
package fixtures

import (
	"github.com/google/uuid"

	"github.com/tracedash/tracedash/internal/db/models"
)

// Organization materializes a full Organization from an optional partial record.
// Passing nil yields the default organization (slug "org-slug").
//
// Role lists supplied by the caller win; the defaults from models.DefaultOrgRoleList
// and models.DefaultTeamRoleList fill in only when the caller supplied none.
func Organization(o *models.Organization) models.Organization {
	org := models.Organization{
		Slug:      "org-slug",
		Name:      "Organization Name",
		Features:  []string{},
		Access:    []string{"org:read", "org:write", "org:admin"},
		Projects:  []models.Project{},
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	if o != nil {
		if o.ID != "" {
			org.ID = o.ID
		}
		if o.Slug != "" {
			org.Slug = o.Slug
		}
		if o.Name != "" {
			org.Name = o.Name
		}
		if o.Features != nil {
			org.Features = o.Features
		}
		if o.Access != nil {
			org.Access = o.Access
		}
		if o.Projects != nil {
			org.Projects = o.Projects
		}
		if o.OrgRoleList != nil {
			org.OrgRoleList = o.OrgRoleList
		}
		if o.TeamRoleList != nil {
			org.TeamRoleList = o.TeamRoleList
		}
		if !o.CreatedAt.IsZero() {
			org.CreatedAt = o.CreatedAt
		}
		if !o.UpdatedAt.IsZero() {
			org.UpdatedAt = o.UpdatedAt
		}
	}
	if org.OrgRoleList == nil {
		org.OrgRoleList = models.DefaultOrgRoleList()
	}
	if org.TeamRoleList == nil {
		org.TeamRoleList = models.DefaultTeamRoleList()
	}
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	return org
}
