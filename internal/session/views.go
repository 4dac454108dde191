package session

import "github.com/elysianestates/crm-api/internal/entity"

type View string

const (
	ViewDashboard  View = "dashboard"
	ViewPipeline   View = "pipeline"
	ViewLeads      View = "leads"
	ViewProperties View = "properties"
	ViewSales      View = "sales"
	ViewAI         View = "ai"
)

// DefaultView is where every role lands, and where a role switch redirects to
// when the active view is no longer permitted.
const DefaultView = ViewDashboard

// viewRoles is the navigation allow-list. Adding a role or a destination is a
// data change here, not a logic change anywhere else.
var viewRoles = map[View][]entity.Role{
	ViewDashboard:  {entity.RoleAdmin, entity.RoleMarketing},
	ViewPipeline:   {entity.RoleAdmin},
	ViewLeads:      {entity.RoleAdmin, entity.RoleMarketing},
	ViewProperties: {entity.RoleAdmin, entity.RoleMarketing},
	ViewSales:      {entity.RoleAdmin},
	ViewAI:         {entity.RoleAdmin},
}

// viewOrder keeps the navigation listing stable; map iteration is not.
var viewOrder = []View{ViewDashboard, ViewPipeline, ViewLeads, ViewProperties, ViewSales, ViewAI}

func (v View) Valid() bool {
	_, ok := viewRoles[v]
	return ok
}

// Allows reports whether the view may render for the given role.
func (v View) Allows(role entity.Role) bool {
	for _, r := range viewRoles[v] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedViews returns the navigation destinations visible to a role, in
// display order.
func AllowedViews(role entity.Role) []View {
	var views []View
	for _, v := range viewOrder {
		if v.Allows(role) {
			views = append(views, v)
		}
	}
	return views
}
