// initialize.go assembles a consistent bundle of mock entities (organization,
// projects, router, routing context) in one call, for tests that mount components
// needing all of them at once.
package fixtures

import "github.com/tracedash/tracedash/internal/db/models"

// Config carries the optional partial records InitializeOrg starts from. Every field
// may be nil; each is resolved independently.
type Config struct {
	// Organization overrides fields of the constructed organization. Its Projects
	// field is ignored: the organization's project list always comes from the
	// resolved Projects/Project input below.
	Organization *models.Organization

	// Projects, when non-empty, is the ordered list of partial projects to
	// materialize. Takes precedence over Project. A zero-length slice is treated
	// the same as nil, so the resolved project list is never empty.
	Projects []ProjectOverrides

	// Project overrides the single constructed project. Ignored when Projects is
	// non-empty.
	Project *ProjectOverrides

	// Router overrides the constructed router. Router.Params merges key-wise over
	// the derived defaults: orgId defaults to the resolved organization's slug and
	// a caller-supplied orgId wins.
	Router *models.Router
}

// Bundle is what InitializeOrg returns: every entity a rendering harness needs, all
// agreeing with each other.
type Bundle struct {
	Organization  models.Organization
	Project       models.Project
	Projects      []models.Project
	Router        models.Router
	RouterContext models.RoutingContext

	// Route is reserved for per-route match metadata and is always empty today.
	// It is kept so consumers destructuring the bundle keep working when it gains
	// content.
	Route map[string]any
}

// InitializeOrg builds an organization, its projects, a router, and the routing
// context tying them together. cfg may be nil.
//
// Project resolution order: cfg.Projects when non-empty, else [cfg.Project] when
// non-nil, else a single default project. The first resolved project is the
// bundle's Project, and the organization's Projects list always equals the
// resolved list.
func InitializeOrg(cfg *Config) Bundle {
	if cfg == nil {
		cfg = &Config{}
	}

	var projects []models.Project
	switch {
	case len(cfg.Projects) > 0:
		projects = make([]models.Project, len(cfg.Projects))
		for i := range cfg.Projects {
			projects[i] = Project(&cfg.Projects[i])
		}
	case cfg.Project != nil:
		projects = []models.Project{Project(cfg.Project)}
	default:
		projects = []models.Project{Project(nil)}
	}

	org := Organization(cfg.Organization)
	org.Projects = projects

	routerOverrides := models.Router{Params: map[string]string{"orgId": org.Slug}}
	if cfg.Router != nil {
		for k, v := range cfg.Router.Params {
			routerOverrides.Params[k] = v
		}
		routerOverrides.Routes = cfg.Router.Routes
		routerOverrides.Location = cfg.Router.Location
	}
	router := Router(&routerOverrides)

	project := projects[0]
	routerContext := RouterContext(models.RoutingContext{
		Organization: &org,
		Project:      &project,
		Router:       &router,
		Location:     router.Location,
	})

	return Bundle{
		Organization:  org,
		Project:       project,
		Projects:      projects,
		Router:        router,
		RouterContext: routerContext,
		Route:         map[string]any{},
	}
}
