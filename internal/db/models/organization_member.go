// Package models - organization_member.go defines user-to-organization membership with
// an assigned org-level role.
package models

import "time"

// OrganizationMember represents a user's membership in an organization
type OrganizationMember struct {
	OrganizationID string    `db:"organization_id" json:"organizationId"`
	UserID         string    `db:"user_id" json:"userId"`
	Role           string    `db:"role" json:"role"` // ID of an org-level Role
	CreatedAt      time.Time `db:"created_at" json:"dateCreated"`
}

// RoleDetails resolves the member's role against the organization's role list.
// Returns nil when the role ID is unknown.
func (m *OrganizationMember) RoleDetails(orgRoleList []Role) *Role {
	for i := range orgRoleList {
		if orgRoleList[i].ID == m.Role {
			return &orgRoleList[i]
		}
	}
	return nil
}
