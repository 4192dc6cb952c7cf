package httpapi

import (
	"context"
	"io"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"
)

type fakeStore struct {
	signUpFn         func(ctx context.Context, input store.SignUpInput) (models.Owner, models.Business, error)
	loginFn          func(ctx context.Context, email, password string) (models.Session, models.Owner, error)
	getSessionFn     func(ctx context.Context, sessionID string) (models.Session, error)
	deleteSessionFn  func(ctx context.Context, sessionID string) error
	businessByOwner  func(ctx context.Context, ownerID string) (models.Business, error)
	getBusinessFn    func(ctx context.Context, businessID string) (models.Business, error)
	searchFn         func(ctx context.Context, query string, limit int) ([]models.BusinessSummary, error)
	listCategoriesFn func(ctx context.Context, businessID string) ([]models.Category, error)
	addCategoryFn    func(ctx context.Context, businessID, name string) (models.Category, error)
	removeCategoryFn func(ctx context.Context, businessID, categoryID string) error
	listStatusesFn   func(ctx context.Context, businessID string) ([]models.StatusDefinition, error)
	addStatusFn      func(ctx context.Context, input store.AddStatusInput) (models.StatusDefinition, error)
	removeStatusFn   func(ctx context.Context, businessID, statusID string) error
	createTicketFn   func(ctx context.Context, input store.CreateTicketInput) (models.Ticket, error)
	listTicketsFn    func(ctx context.Context, businessID string, filter store.TicketFilter) ([]models.Ticket, error)
	updateStatusFn   func(ctx context.Context, businessID, ticketID, status string) (models.Ticket, error)
	deleteTicketFn   func(ctx context.Context, businessID, ticketID string) error
}

func (f fakeStore) SignUp(ctx context.Context, input store.SignUpInput) (models.Owner, models.Business, error) {
	if f.signUpFn == nil {
		return models.Owner{}, models.Business{}, nil
	}
	return f.signUpFn(ctx, input)
}

func (f fakeStore) Login(ctx context.Context, email, password string) (models.Session, models.Owner, error) {
	if f.loginFn == nil {
		return models.Session{}, models.Owner{}, store.ErrInvalidCredentials
	}
	return f.loginFn(ctx, email, password)
}

func (f fakeStore) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	if f.getSessionFn == nil {
		return models.Session{}, store.ErrSessionNotFound
	}
	return f.getSessionFn(ctx, sessionID)
}

func (f fakeStore) DeleteSession(ctx context.Context, sessionID string) error {
	if f.deleteSessionFn == nil {
		return nil
	}
	return f.deleteSessionFn(ctx, sessionID)
}

func (f fakeStore) GetBusinessByOwner(ctx context.Context, ownerID string) (models.Business, error) {
	if f.businessByOwner == nil {
		return models.Business{}, store.ErrBusinessNotFound
	}
	return f.businessByOwner(ctx, ownerID)
}

func (f fakeStore) GetBusiness(ctx context.Context, businessID string) (models.Business, error) {
	if f.getBusinessFn == nil {
		return models.Business{}, store.ErrBusinessNotFound
	}
	return f.getBusinessFn(ctx, businessID)
}

func (f fakeStore) SearchBusinesses(ctx context.Context, query string, limit int) ([]models.BusinessSummary, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(ctx, query, limit)
}

func (f fakeStore) ListCategories(ctx context.Context, businessID string) ([]models.Category, error) {
	if f.listCategoriesFn == nil {
		return nil, nil
	}
	return f.listCategoriesFn(ctx, businessID)
}

func (f fakeStore) AddCategory(ctx context.Context, businessID, name string) (models.Category, error) {
	if f.addCategoryFn == nil {
		return models.Category{}, nil
	}
	return f.addCategoryFn(ctx, businessID, name)
}

func (f fakeStore) RemoveCategory(ctx context.Context, businessID, categoryID string) error {
	if f.removeCategoryFn == nil {
		return nil
	}
	return f.removeCategoryFn(ctx, businessID, categoryID)
}

func (f fakeStore) ListStatuses(ctx context.Context, businessID string) ([]models.StatusDefinition, error) {
	if f.listStatusesFn == nil {
		return store.BuiltInStatuses(), nil
	}
	return f.listStatusesFn(ctx, businessID)
}

func (f fakeStore) AddStatus(ctx context.Context, input store.AddStatusInput) (models.StatusDefinition, error) {
	if f.addStatusFn == nil {
		return models.StatusDefinition{}, nil
	}
	return f.addStatusFn(ctx, input)
}

func (f fakeStore) RemoveStatus(ctx context.Context, businessID, statusID string) error {
	if f.removeStatusFn == nil {
		return nil
	}
	return f.removeStatusFn(ctx, businessID, statusID)
}

func (f fakeStore) CreateTicket(ctx context.Context, input store.CreateTicketInput) (models.Ticket, error) {
	if f.createTicketFn == nil {
		return models.Ticket{}, nil
	}
	return f.createTicketFn(ctx, input)
}

func (f fakeStore) ListTickets(ctx context.Context, businessID string, filter store.TicketFilter) ([]models.Ticket, error) {
	if f.listTicketsFn == nil {
		return nil, nil
	}
	return f.listTicketsFn(ctx, businessID, filter)
}

func (f fakeStore) UpdateTicketStatus(ctx context.Context, businessID, ticketID, status string) (models.Ticket, error) {
	if f.updateStatusFn == nil {
		return models.Ticket{}, nil
	}
	return f.updateStatusFn(ctx, businessID, ticketID, status)
}

func (f fakeStore) DeleteTicket(ctx context.Context, businessID, ticketID string) error {
	if f.deleteTicketFn == nil {
		return nil
	}
	return f.deleteTicketFn(ctx, businessID, ticketID)
}

type fakeStorage struct {
	uploadFn func(ctx context.Context, objectName, contentType string, data io.Reader) (string, error)
	calls    int
}

func (f *fakeStorage) Upload(ctx context.Context, objectName, contentType string, data io.Reader) (string, error) {
	f.calls++
	if f.uploadFn == nil {
		return "https://example.com/" + objectName, nil
	}
	return f.uploadFn(ctx, objectName, contentType, data)
}

// ownerSession wires a fakeStore session lookup so owner endpoints resolve
// the given business from the Bearer token tests send.
func ownerSession(businessID string) func(ctx context.Context, sessionID string) (models.Session, error) {
	return func(ctx context.Context, sessionID string) (models.Session, error) {
		return models.Session{
			SessionID:  sessionID,
			OwnerID:    "owner-1",
			BusinessID: businessID,
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil
	}
}
