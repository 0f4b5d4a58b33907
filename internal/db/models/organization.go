// Package models - organization.go defines the Organization model representing a tenant
// in the dashboard with a URL-safe slug, feature flags, and the role lists exposed to
// the member-management UI.
package models

import "time"

// Organization represents a tenant owning projects in the dashboard
type Organization struct {
	ID           string    `db:"id" json:"id"`
	Slug         string    `db:"slug" json:"slug"` // URL-safe identifier (used in routes)
	Name         string    `db:"name" json:"name"` // Human-readable display name
	Features     []string  `db:"-" json:"features"`
	Access       []string  `db:"-" json:"access"` // Scopes the requesting user holds on this org
	Projects     []Project `db:"-" json:"projects"`
	OrgRoleList  []Role    `db:"-" json:"orgRoleList"`
	TeamRoleList []Role    `db:"-" json:"teamRoleList"`
	CreatedAt    time.Time `db:"created_at" json:"dateCreated"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

// HasFeature returns true if the named feature flag is enabled for the organization
func (o *Organization) HasFeature(name string) bool {
	for _, f := range o.Features {
		if f == name {
			return true
		}
	}
	return false
}

// HasAccess returns true if the requesting user holds the given scope on the organization
func (o *Organization) HasAccess(scope string) bool {
	for _, s := range o.Access {
		if s == scope {
			return true
		}
	}
	return false
}
