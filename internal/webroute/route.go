// Package webroute maps a request path and session state to one of the
// application's pages. The original client compared raw path strings inline;
// here the mapping is an enumerated type behind a pure function so it can be
// tested without any HTTP machinery.
package webroute

import "strings"

type Route string

const (
	RouteLanding   Route = "landing"
	RouteLogin     Route = "login"
	RouteDashboard Route = "dashboard"
	RouteSearch    Route = "search"
	RouteNewTicket Route = "new-ticket"
	RouteSettings  Route = "settings"
)

// Resolution carries the resolved route and, when set, a redirect the
// caller must issue instead of rendering.
type Resolution struct {
	Route      Route
	RedirectTo string
}

// Resolve decides the page for a path. Authenticated owners land on the
// dashboard from both / and /login; unauthenticated visitors are redirected
// away from /settings. Unknown paths fall back to the landing page.
func Resolve(path string, authenticated bool) Resolution {
	switch normalize(path) {
	case "/ticket":
		return Resolution{Route: RouteSearch}
	case "/new-ticket":
		return Resolution{Route: RouteNewTicket}
	case "/login":
		if authenticated {
			return Resolution{Route: RouteDashboard}
		}
		return Resolution{Route: RouteLogin}
	case "/settings":
		if !authenticated {
			return Resolution{Route: RouteLogin, RedirectTo: "/login"}
		}
		return Resolution{Route: RouteSettings}
	case "/":
		if authenticated {
			return Resolution{Route: RouteDashboard}
		}
		return Resolution{Route: RouteLanding}
	default:
		return Resolution{Route: RouteLanding}
	}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
