package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"
)

type signUpRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	BusinessName  string `json:"business_name"`
	BusinessPhone string `json:"business_phone"`
	BusinessEmail string `json:"business_email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SessionID string          `json:"session_id"`
	ExpiresAt string          `json:"expires_at"`
	Owner     models.Owner    `json:"owner"`
	Business  models.Business `json:"business"`
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	if req.Email == "" || req.Password == "" || req.BusinessName == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email, password, and business_name are required")
		return
	}

	owner, business, err := h.store.SignUp(r.Context(), store.SignUpInput{
		Email:         req.Email,
		Password:      req.Password,
		BusinessName:  req.BusinessName,
		BusinessPhone: req.BusinessPhone,
		BusinessEmail: req.BusinessEmail,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// Sign the fresh owner in right away, as the original flow did.
	session, _, err := h.store.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID: session.SessionID,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		Owner:     owner,
		Business:  business,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	session, owner, err := h.store.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	business, err := h.store.GetBusinessByOwner(r.Context(), owner.OwnerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: session.SessionID,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		Owner:     owner,
		Business:  business,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteSession(r.Context(), session.SessionID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session":  session,
		"business": business,
	})
}
