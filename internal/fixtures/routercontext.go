// routercontext.go materializes RoutingContext fixtures: the bundle a rendering
// harness injects into components that expect organization/project/router state.
package fixtures

import "github.com/tracedash/tracedash/internal/db/models"

// RouterContext materializes a RoutingContext by shallow-merging the supplied partial
// contexts in order, later entries winning field-wise. With no arguments it yields a
// context over the default organization, project, and router.
//
// When no Location is supplied the router's location is used, so the context always
// agrees with the router it carries.
func RouterContext(contexts ...models.RoutingContext) models.RoutingContext {
	var ctx models.RoutingContext
	for _, c := range contexts {
		if c.Organization != nil {
			ctx.Organization = c.Organization
		}
		if c.Project != nil {
			ctx.Project = c.Project
		}
		if c.Router != nil {
			ctx.Router = c.Router
		}
		if locationSet(c.Location) {
			ctx.Location = c.Location
		}
	}
	if ctx.Organization == nil {
		org := Organization(nil)
		ctx.Organization = &org
	}
	if ctx.Project == nil {
		p := Project(nil)
		ctx.Project = &p
	}
	if ctx.Router == nil {
		r := Router(nil)
		ctx.Router = &r
	}
	if !locationSet(ctx.Location) {
		ctx.Location = ctx.Router.Location
	}
	return ctx
}

func locationSet(l models.Location) bool {
	return l.Pathname != "" || l.Search != "" || l.Hash != "" || l.Query != nil
}
