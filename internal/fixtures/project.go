// Package fixtures builds fully-populated domain records for tests. Each constructor
// accepts an optional partial record and fills every unset field with a stable default,
// so test cases only spell out the fields they actually assert on.
//
// Identifiers are the one non-deterministic field: when a caller leaves an ID empty a
// fresh UUID is generated, the same way a database insert would assign one.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracedash/tracedash/internal/db/models"
)

// fixtureTime is the creation timestamp stamped on all fixture records so that two
// fixtures built from identical input compare deep-equal.
var fixtureTime = time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)

// ProjectOverrides carries the optional fields a caller wants to pin on a fixture
// project. IsMember and HasAccess are pointers so an explicit false is
// distinguishable from unset; leave them nil to keep the defaults of true.
type ProjectOverrides struct {
	ID             string
	OrganizationID string
	Slug           string
	Name           string
	Platform       string
	IsMember       *bool
	HasAccess      *bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Project materializes a full Project from an optional set of overrides.
// Passing nil yields the default project (slug "project-slug"). Every field left
// zero (or nil, for the booleans) keeps its default.
func Project(o *ProjectOverrides) models.Project {
	p := models.Project{
		Slug:      "project-slug",
		Name:      "Project Name",
		Platform:  "javascript",
		IsMember:  true,
		HasAccess: true,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	}
	if o != nil {
		if o.ID != "" {
			p.ID = o.ID
		}
		if o.OrganizationID != "" {
			p.OrganizationID = o.OrganizationID
		}
		if o.Slug != "" {
			p.Slug = o.Slug
		}
		if o.Name != "" {
			p.Name = o.Name
		}
		if o.Platform != "" {
			p.Platform = o.Platform
		}
		if o.IsMember != nil {
			p.IsMember = *o.IsMember
		}
		if o.HasAccess != nil {
			p.HasAccess = *o.HasAccess
		}
		if !o.CreatedAt.IsZero() {
			p.CreatedAt = o.CreatedAt
		}
		if !o.UpdatedAt.IsZero() {
			p.UpdatedAt = o.UpdatedAt
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return p
}
