package store

import (
	"context"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
)

type SignUpInput struct {
	Email         string
	Password      string
	BusinessName  string
	BusinessPhone string
	BusinessEmail string
}

type CreateTicketInput struct {
	BusinessID    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Category      string
	Description   string
	ImageURL      string
	CreatedAt     time.Time
}

type AddStatusInput struct {
	BusinessID  string
	Name        string
	Description string
	Color       string
}

// TicketFilter narrows ListTickets. A nil Day means no date filter; Day is
// truncated to the calendar day in Location (server local time when nil).
type TicketFilter struct {
	Status   string
	Day      *time.Time
	Location *time.Location
}

type AuthStore interface {
	SignUp(ctx context.Context, input SignUpInput) (models.Owner, models.Business, error)
	Login(ctx context.Context, email, password string) (models.Session, models.Owner, error)
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type BusinessStore interface {
	GetBusinessByOwner(ctx context.Context, ownerID string) (models.Business, error)
	GetBusiness(ctx context.Context, businessID string) (models.Business, error)
	SearchBusinesses(ctx context.Context, query string, limit int) ([]models.BusinessSummary, error)
}

type SettingsStore interface {
	ListCategories(ctx context.Context, businessID string) ([]models.Category, error)
	AddCategory(ctx context.Context, businessID, name string) (models.Category, error)
	RemoveCategory(ctx context.Context, businessID, categoryID string) error
	ListStatuses(ctx context.Context, businessID string) ([]models.StatusDefinition, error)
	AddStatus(ctx context.Context, input AddStatusInput) (models.StatusDefinition, error)
	RemoveStatus(ctx context.Context, businessID, statusID string) error
}

type TicketStore interface {
	CreateTicket(ctx context.Context, input CreateTicketInput) (models.Ticket, error)
	ListTickets(ctx context.Context, businessID string, filter TicketFilter) ([]models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, businessID, ticketID, status string) (models.Ticket, error)
	DeleteTicket(ctx context.Context, businessID, ticketID string) error
}

// Store is the full persistence surface the HTTP layer depends on.
type Store interface {
	AuthStore
	BusinessStore
	SettingsStore
	TicketStore
}
