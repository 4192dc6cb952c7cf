package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/submission"
)

// handleSearchBusinesses backs the wizard's business picker. Queries below
// the minimum length return an empty list without a store round-trip;
// debouncing and stale-response handling are the caller's job.
func (h *Handler) handleSearchBusinesses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if len([]rune(query)) < submission.MinQueryLength {
		writeJSON(w, http.StatusOK, []models.BusinessSummary{})
		return
	}

	limit := h.searchLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a positive integer")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	results, err := h.store.SearchBusinesses(r.Context(), query, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if results == nil {
		results = []models.BusinessSummary{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) handleGetBusiness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	businessID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/businesses/"), "/")
	if !isValidUUID(businessID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "business id must be a UUID")
		return
	}

	business, err := h.store.GetBusiness(r.Context(), businessID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// Public lookup: expose only what the submission form needs.
	writeJSON(w, http.StatusOK, models.BusinessSummary{BusinessID: business.BusinessID, Name: business.Name})
}

func (h *Handler) handleOwnBusiness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	business, err := h.store.GetBusinessByOwner(r.Context(), session.OwnerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, business)
}
