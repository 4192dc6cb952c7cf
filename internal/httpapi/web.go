package httpapi

import (
	"net/http"

	"github.com/Avraham885/Customers-Services/internal/webroute"
)

// handleWeb resolves browser-style paths for the frontend: it answers with
// the logical route so the client can render the right page, or a 302 when
// the path requires a session the request does not carry.
func (h *Handler) handleWeb(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_, authed := sessionFromContext(r.Context())
	resolution := webroute.Resolve(r.URL.Path, authed)
	if resolution.RedirectTo != "" {
		http.Redirect(w, r, resolution.RedirectTo, http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"route": string(resolution.Route)})
}
