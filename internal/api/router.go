// Package api wires together the HTTP routes for the dashboard backend.
//
// All dashboard endpoints live under /api/0/ and return JSON in the shape the
// front-end consumes directly. Operational endpoints (/health, /version) sit at the
// root and bypass the API group so probes are unaffected by future API middleware.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/tracedash/tracedash/internal/config"
	"github.com/tracedash/tracedash/internal/middleware"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *sqlx.DB) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", healthCheckHandler(db))
	router.GET("/version", versionHandler())

	orgHandlers := NewOrganizationHandlers(cfg, db)

	v0 := router.Group("/api/0")
	{
		v0.GET("/organizations/", orgHandlers.ListOrganizationsHandler())
		v0.GET("/organizations/:orgId/", orgHandlers.GetOrganizationHandler())
		v0.GET("/organizations/:orgId/projects/", orgHandlers.ListProjectsHandler())
		v0.GET("/organizations/:orgId/projects/:projectId/", orgHandlers.GetProjectHandler())
	}

	return router
}

// healthCheckHandler reports liveness: the process is up and the database answers a ping
func healthCheckHandler(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Version is the server version reported by /version
const Version = "0.1.0"

// versionHandler reports the running server version
func versionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version})
	}
}
