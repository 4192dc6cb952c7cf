package httpapi

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/Avraham885/Customers-Services/internal/store"
	"github.com/Avraham885/Customers-Services/internal/submission"
)

type attachmentPayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	DataBase64  string `json:"data_base64"`
}

type createTicketRequest struct {
	BusinessID    string             `json:"business_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerEmail string             `json:"customer_email"`
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	Attachment    *attachmentPayload `json:"attachment"`
}

func (h *Handler) handleTickets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreateTicket(w, r)
	case http.MethodGet:
		h.handleListTickets(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCreateTicket is the unauthenticated customer submission. The
// attachment, when present, is stored first; the ticket insert does not run
// unless the upload produced a URL. The two writes are not transactional: a
// failed insert after a successful upload leaves the object behind.
func (h *Handler) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.BusinessID = strings.TrimSpace(req.BusinessID)
	if !isValidUUID(req.BusinessID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "business_id must be a UUID")
		return
	}

	input := store.CreateTicketInput{
		BusinessID:    req.BusinessID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		CreatedAt:     time.Now().UTC(),
	}
	if err := store.ValidateTicketInput(input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer_name, customer_phone, and description are required")
		return
	}

	if req.Attachment != nil {
		data, err := base64.StdEncoding.DecodeString(req.Attachment.DataBase64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "attachment data must be base64")
			return
		}
		contentType := req.Attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		url, err := h.storage.Upload(r.Context(), submission.ObjectName(req.Attachment.Filename), contentType, bytes.NewReader(data))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		input.ImageURL = url
	}

	ticket, err := h.store.CreateTicket(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) handleListTickets(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	filter := store.TicketFilter{
		Status:   r.URL.Query().Get("status"),
		Location: h.location,
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, h.location)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
			return
		}
		filter.Day = &day
	}

	tickets, err := h.store.ListTickets(r.Context(), session.BusinessID, filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (h *Handler) handleTicketByID(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tickets/"), "/")
	parts := strings.Split(path, "/")

	switch {
	case len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPost:
		h.handleUpdateTicketStatus(w, r, parts[0])
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.handleDeleteTicket(w, r, parts[0])
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// handleUpdateTicketStatus deliberately accepts any status string. Nothing
// checks it against the configured definitions; stale and unknown values
// are a display-layer concern.
func (h *Handler) handleUpdateTicketStatus(w http.ResponseWriter, r *http.Request, ticketID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if !isValidUUID(ticketID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "ticket id must be a UUID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	ticket, err := h.store.UpdateTicketStatus(r.Context(), session.BusinessID, ticketID, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// handleDeleteTicket is irreversible, so the caller must confirm
// explicitly; the original UI put a confirm dialog in front of the call.
func (h *Handler) handleDeleteTicket(w http.ResponseWriter, r *http.Request, ticketID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if !isValidUUID(ticketID) {
		writeError(w, http.StatusBadRequest, "invalid_request", "ticket id must be a UUID")
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirmation_required", "delete requires confirm=true")
		return
	}

	if err := h.store.DeleteTicket(r.Context(), session.BusinessID, ticketID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
