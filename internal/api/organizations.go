// organizations.go implements handlers for organization and project read endpoints.
// Responses mirror the shape the dashboard front-end consumes: an organization detail
// payload carries its project list, role lists, and feature flags inline so a single
// request is enough to render the org context.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/tracedash/tracedash/internal/config"
	"github.com/tracedash/tracedash/internal/db/models"
	"github.com/tracedash/tracedash/internal/db/repositories"
	"github.com/tracedash/tracedash/internal/telemetry"
)

// OrganizationHandlers handles organization and project endpoints
type OrganizationHandlers struct {
	cfg      *config.Config
	orgRepo  *repositories.OrganizationRepository
	projRepo *repositories.ProjectRepository
}

// NewOrganizationHandlers creates a new OrganizationHandlers instance
func NewOrganizationHandlers(cfg *config.Config, db *sqlx.DB) *OrganizationHandlers {
	return &OrganizationHandlers{
		cfg:      cfg,
		orgRepo:  repositories.NewOrganizationRepository(db),
		projRepo: repositories.NewProjectRepository(db),
	}
}

// ListOrganizationsHandler lists all organizations with pagination
// GET /api/0/organizations/?page=1&per_page=20
func (h *OrganizationHandlers) ListOrganizationsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

		if page < 1 {
			page = 1
		}
		if perPage < 1 || perPage > 100 {
			perPage = 20
		}

		offset := (page - 1) * perPage

		orgs, err := h.orgRepo.List(c.Request.Context(), perPage, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations"})
			return
		}

		total, err := h.orgRepo.Count(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count organizations"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"organizations": orgs,
			"pagination": gin.H{
				"page":     page,
				"per_page": perPage,
				"total":    total,
			},
		})
	}
}

// GetOrganizationHandler retrieves an organization by slug, with projects, role
// lists, and feature flags attached
// GET /api/0/organizations/:orgId/
func (h *OrganizationHandlers) GetOrganizationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("orgId")

		org, err := h.orgRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			telemetry.OrgLookupsTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve organization"})
			return
		}
		if org == nil {
			telemetry.OrgLookupsTotal.WithLabelValues("miss").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}
		telemetry.OrgLookupsTotal.WithLabelValues("hit").Inc()

		projects, err := h.projRepo.ListByOrganization(c.Request.Context(), org.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
			return
		}

		// Derived fields are attached at read time; they are not stored columns.
		org.Projects = projects
		org.OrgRoleList = models.DefaultOrgRoleList()
		org.TeamRoleList = models.DefaultTeamRoleList()
		org.Features = h.cfg.Dashboard.Features

		c.JSON(http.StatusOK, org)
	}
}

// ListProjectsHandler lists all projects of an organization
// GET /api/0/organizations/:orgId/projects/
func (h *OrganizationHandlers) ListProjectsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("orgId")

		org, err := h.orgRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve organization"})
			return
		}
		if org == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}

		projects, err := h.projRepo.ListByOrganization(c.Request.Context(), org.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// GetProjectHandler retrieves a single project by organization and project slug
// GET /api/0/organizations/:orgId/projects/:projectId/
func (h *OrganizationHandlers) GetProjectHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("orgId")

		org, err := h.orgRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve organization"})
			return
		}
		if org == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
			return
		}

		project, err := h.projRepo.GetBySlug(c.Request.Context(), org.ID, c.Param("projectId"))
		if err != nil {
			telemetry.ProjectLookupsTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
			return
		}
		if project == nil {
			telemetry.ProjectLookupsTotal.WithLabelValues("miss").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		telemetry.ProjectLookupsTotal.WithLabelValues("hit").Inc()

		c.JSON(http.StatusOK, project)
	}
}
