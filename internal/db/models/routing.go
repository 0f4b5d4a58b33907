// Package models - routing.go defines the navigation-state records consumed by the
// dashboard's rendering layer: the current location, the matched route parameters, and
// the context bundle handed to components that need org/project/router state.
package models

// Location describes a point in the dashboard's navigation history
type Location struct {
	Pathname string            `json:"pathname"`
	Search   string            `json:"search"`
	Hash     string            `json:"hash"`
	Query    map[string]string `json:"query"`
}

// Router represents navigation state: the matched route parameters and current location
type Router struct {
	Params   map[string]string `json:"params"`
	Routes   []string          `json:"routes"`
	Location Location          `json:"location"`
}

// Param returns the named route parameter, or "" when absent
func (r *Router) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// RoutingContext bundles the entities a rendering harness needs to mount a component
// that expects organization, project, and router state.
type RoutingContext struct {
	Organization *Organization `json:"organization"`
	Project      *Project      `json:"project"`
	Router       *Router       `json:"router"`
	Location     Location      `json:"location"`
}
