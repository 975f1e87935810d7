package app

import "strings"

// Routes.
const (
	RouteComponents = "/components"
	RouteLayout     = "/layout"
	RouteOutliner   = "/outliner"
	RouteSchedules  = "/schedules"
)

// Routes lists the pages in tab order.
var Routes = []string{RouteComponents, RouteLayout, RouteOutliner, RouteSchedules}

// Resolve maps a path to a known route. Trailing slashes and case are
// ignored; anything unknown falls back to the components page.
func Resolve(path string) string {
	p := strings.ToLower(strings.TrimSpace(path))
	if p != "/" {
		p = strings.TrimRight(p, "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for _, r := range Routes {
		if r == p {
			return r
		}
	}
	return RouteComponents
}

// NextRoute returns the route after current in tab order, wrapping around.
func NextRoute(current string) string {
	for i, r := range Routes {
		if r == current {
			return Routes[(i+1)%len(Routes)]
		}
	}
	return Routes[0]
}
