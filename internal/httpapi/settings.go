package httpapi

import (
	"net/http"
	"strings"

	"github.com/Avraham885/Customers-Services/internal/store"
)

// Category and status listing is public (the submission form needs both);
// mutation requires the owner session, and the business is always taken
// from that session.

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListCategories(w, r)
	case http.MethodPost:
		h.handleAddCategory(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.settingsBusinessID(w, r)
	if !ok {
		return
	}
	categories, err := h.store.ListCategories(r.Context(), businessID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	category, err := h.store.AddCategory(r.Context(), session.BusinessID, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	categoryID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/categories/"), "/")
	if !isValidUUID(categoryID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "category id must be a UUID")
		return
	}
	if err := h.store.RemoveCategory(r.Context(), session.BusinessID, categoryID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStatuses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListStatuses(w, r)
	case http.MethodPost:
		h.handleAddStatus(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleListStatuses(w http.ResponseWriter, r *http.Request) {
	businessID, ok := h.settingsBusinessID(w, r)
	if !ok {
		return
	}
	statuses, err := h.store.ListStatuses(r.Context(), businessID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (h *Handler) handleAddStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	status, err := h.store.AddStatus(r.Context(), store.AddStatusInput{
		BusinessID:  session.BusinessID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, status)
}

func (h *Handler) handleStatusByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	statusID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/statuses/"), "/")
	if !isValidUUID(statusID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "status id must be a UUID")
		return
	}
	if err := h.store.RemoveStatus(r.Context(), session.BusinessID, statusID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// settingsBusinessID resolves which business a read targets: the session's
// own business for owners, or an explicit business_id for the public
// submission form.
func (h *Handler) settingsBusinessID(w http.ResponseWriter, r *http.Request) (string, bool) {
	if session, ok := sessionFromContext(r.Context()); ok {
		return session.BusinessID, true
	}
	businessID := strings.TrimSpace(r.URL.Query().Get("business_id"))
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "business_id is required")
		return "", false
	}
	if !isValidUUID(businessID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "business_id must be a UUID")
		return "", false
	}
	return businessID, true
}
