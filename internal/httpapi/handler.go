package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Avraham885/Customers-Services/internal/blob"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store   store.Store
	storage blob.Storage
	logger  *logrus.Logger

	searchLimit int
	location    *time.Location
}

type Options struct {
	SearchResultLimit int
	Location          *time.Location
}

func NewHandler(st store.Store, storage blob.Storage, logger *logrus.Logger, options Options) *Handler {
	limit := options.SearchResultLimit
	if limit <= 0 {
		limit = 5
	}
	loc := options.Location
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		store:       st,
		storage:     storage,
		logger:      logger,
		searchLimit: limit,
		location:    loc,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/api/auth/signup", h.handleSignUp)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/auth/logout", h.handleLogout)
	mux.HandleFunc("/api/auth/me", h.handleMe)
	mux.HandleFunc("/api/business", h.handleOwnBusiness)
	mux.HandleFunc("/api/businesses", h.handleSearchBusinesses)
	mux.HandleFunc("/api/businesses/", h.handleGetBusiness)
	mux.HandleFunc("/api/categories", h.handleCategories)
	mux.HandleFunc("/api/categories/", h.handleCategoryByID)
	mux.HandleFunc("/api/statuses", h.handleStatuses)
	mux.HandleFunc("/api/statuses/", h.handleStatusByID)
	mux.HandleFunc("/api/tickets", h.handleTickets)
	mux.HandleFunc("/api/tickets/", h.handleTicketByID)
	mux.HandleFunc("/", h.handleWeb)
	return AuthMiddleware(h.store, mux)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type errorResponse struct {
	Error responseError `json:"error"`
}

type responseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest, "invalid_request", "required field missing or empty"
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, store.ErrEmailTaken):
		return http.StatusConflict, "email_taken", "email already registered"
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusUnauthorized, "unauthorized", "invalid session"
	case errors.Is(err, store.ErrBusinessNotFound):
		return http.StatusNotFound, "business_not_found", "business not found"
	case errors.Is(err, store.ErrTicketNotFound):
		return http.StatusNotFound, "ticket_not_found", "ticket not found"
	case errors.Is(err, store.ErrCategoryNotFound):
		return http.StatusNotFound, "category_not_found", "category not found"
	case errors.Is(err, store.ErrStatusNotFound):
		return http.StatusNotFound, "status_not_found", "status not found"
	default:
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}

// fail logs remote-operation failures once and writes the mapped response.
// Client errors are not logged; they are the caller's problem.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error(err.Error())
	}
	writeError(w, status, code, message)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: responseError{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return false
	}
	return true
}

func isValidUUID(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
