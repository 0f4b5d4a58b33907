// router.go materializes Router fixtures: mock navigation state for components that
// read route parameters or the current location.
package fixtures

import "github.com/tracedash/tracedash/internal/db/models"

// Router materializes a full Router from an optional partial record.
// Passing nil yields a router at /mock-pathname/ with no route parameters.
//
// Params merges key-wise: caller-supplied keys are copied over the defaults, so a
// partial params map never discards keys the caller did not mention.
func Router(o *models.Router) models.Router {
	r := models.Router{
		Params: map[string]string{},
		Routes: []string{},
		Location: models.Location{
			Pathname: "/mock-pathname/",
			Query:    map[string]string{},
		},
	}
	if o != nil {
		for k, v := range o.Params {
			r.Params[k] = v
		}
		if o.Routes != nil {
			r.Routes = o.Routes
		}
		if o.Location.Pathname != "" {
			r.Location.Pathname = o.Location.Pathname
		}
		if o.Location.Search != "" {
			r.Location.Search = o.Location.Search
		}
		if o.Location.Hash != "" {
			r.Location.Hash = o.Location.Hash
		}
		if o.Location.Query != nil {
			r.Location.Query = o.Location.Query
		}
	}
	return r
}
