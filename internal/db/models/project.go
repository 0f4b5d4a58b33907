// Package models - project.go defines the Project model, a unit of work owned by an
// organization and addressed by an org-scoped slug.
package models

import "time"

// Project represents a project owned by an organization
type Project struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organizationId"`
	Slug           string    `db:"slug" json:"slug"` // URL-safe identifier, unique within the organization
	Name           string    `db:"name" json:"name"`
	Platform       string    `db:"platform" json:"platform"` // SDK platform key, e.g. "javascript"
	IsMember       bool      `db:"-" json:"isMember"`        // Requesting user belongs to one of the project's teams
	HasAccess      bool      `db:"-" json:"hasAccess"`
	CreatedAt      time.Time `db:"created_at" json:"dateCreated"`
	UpdatedAt      time.Time `db:"updated_at" json:"-"`
}
