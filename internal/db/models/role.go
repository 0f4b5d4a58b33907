// Package models - role.go defines the Role model for named permission sets at the
// organization and team level, along with the predefined system role lists served to
// the member-management UI.
package models

// Role represents a predefined set of scopes assignable at the org or team level
type Role struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Desc            string   `json:"desc"`
	Scopes          []string `json:"scopes"`
	IsAllowed       bool     `json:"isAllowed"`
	IsRetired       bool     `json:"isRetired"`
	MinimumTeamRole string   `json:"minimumTeamRole,omitempty"`
}

// HasScope returns true if the role grants the given scope
func (r *Role) HasScope(scope string) bool {
	for _, s := range r.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// DefaultOrgRoleList returns the organization-level roles every org starts with
func DefaultOrgRoleList() []Role {
	return []Role{
		{
			ID:              "member",
			Name:            "Member",
			Desc:            "Members can view and act on events, and view most other data within the organization",
			Scopes:          []string{"event:read", "event:write", "project:read", "org:read", "team:read"},
			IsAllowed:       true,
			MinimumTeamRole: "contributor",
		},
		{
			ID:              "admin",
			Name:            "Admin",
			Desc:            "Admin privileges on any teams of which they are a member, and can create new teams and projects",
			Scopes:          []string{"event:admin", "project:admin", "team:admin", "org:read", "member:read"},
			IsAllowed:       true,
			MinimumTeamRole: "admin",
		},
		{
			ID:              "manager",
			Name:            "Manager",
			Desc:            "Gains admin access on all teams as well as the ability to add and remove members",
			Scopes:          []string{"event:admin", "project:admin", "team:admin", "org:write", "member:admin"},
			IsAllowed:       true,
			MinimumTeamRole: "admin",
		},
		{
			ID:              "owner",
			Name:            "Owner",
			Desc:            "Unrestricted access to the organization, its data, and its settings",
			Scopes:          []string{"org:admin", "project:admin", "team:admin", "event:admin", "member:admin"},
			IsAllowed:       true,
			MinimumTeamRole: "admin",
		},
	}
}

// DefaultTeamRoleList returns the team-level roles every org starts with
func DefaultTeamRoleList() []Role {
	return []Role{
		{
			ID:        "contributor",
			Name:      "Contributor",
			Desc:      "Contributors can view and act on events, and view most other data within the team's projects",
			Scopes:    []string{"event:read", "event:write", "project:read", "team:read"},
			IsAllowed: true,
		},
		{
			ID:        "admin",
			Name:      "Team Admin",
			Desc:      "Admin privileges on the team: edit membership, project ownership, and settings",
			Scopes:    []string{"event:admin", "project:admin", "team:admin"},
			IsAllowed: true,
		},
	}
}
