package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateTicket(ctx context.Context, input store.CreateTicketInput) (models.Ticket, error) {
	if err := store.ValidateTicketInput(input); err != nil {
		return models.Ticket{}, err
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}
	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	ticket := models.Ticket{
		TicketID:      uuid.NewString(),
		BusinessID:    input.BusinessID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Category:      category,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Status:        models.StatusNew,
		CreatedAt:     createdAt,
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tickets (
			ticket_id, business_id, customer_name, customer_phone, customer_email,
			category, description, image_url, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, ticket.TicketID, ticket.BusinessID, ticket.CustomerName, ticket.CustomerPhone,
		nullIfEmpty(ticket.CustomerEmail), ticket.Category, ticket.Description,
		nullIfEmpty(ticket.ImageURL), ticket.Status, ticket.CreatedAt)
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

// ListTickets returns the business's tickets newest first. The filters are
// pushed into the query but must stay equivalent to fetching everything and
// filtering by status equality and same-calendar-day in the filter's
// location.
func (s *Store) ListTickets(ctx context.Context, businessID string, filter store.TicketFilter) ([]models.Ticket, error) {
	query := `
		SELECT ticket_id, business_id, customer_name, customer_phone, customer_email,
		       category, description, image_url, status, created_at
		FROM tickets
		WHERE business_id = $1
	`
	args := []interface{}{businessID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $2`
	}
	if filter.Day != nil {
		loc := filter.Location
		if loc == nil {
			loc = time.Local
		}
		day := filter.Day.In(loc)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		args = append(args, start, start.AddDate(0, 0, 1))
		if filter.Status != "" {
			query += ` AND created_at >= $3 AND created_at < $4`
		} else {
			query += ` AND created_at >= $2 AND created_at < $3`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		var ticket models.Ticket
		var emailNull, imageNull sql.NullString
		if err := rows.Scan(&ticket.TicketID, &ticket.BusinessID, &ticket.CustomerName, &ticket.CustomerPhone,
			&emailNull, &ticket.Category, &ticket.Description, &imageNull, &ticket.Status, &ticket.CreatedAt); err != nil {
			return nil, err
		}
		ticket.CustomerEmail = nullString(emailNull)
		ticket.ImageURL = nullString(imageNull)
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateTicketStatus accepts any status string. The looseness is
// intentional: the storage layer never validated status values against the
// configured definitions and tickets may carry names that were deleted.
func (s *Store) UpdateTicketStatus(ctx context.Context, businessID, ticketID, status string) (models.Ticket, error) {
	var ticket models.Ticket
	var emailNull, imageNull sql.NullString
	row := s.pool.QueryRow(ctx, `
		UPDATE tickets
		SET status = $1
		WHERE ticket_id = $2 AND business_id = $3
		RETURNING ticket_id, business_id, customer_name, customer_phone, customer_email,
		          category, description, image_url, status, created_at
	`, status, ticketID, businessID)
	if err := row.Scan(&ticket.TicketID, &ticket.BusinessID, &ticket.CustomerName, &ticket.CustomerPhone,
		&emailNull, &ticket.Category, &ticket.Description, &imageNull, &ticket.Status, &ticket.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Ticket{}, store.ErrTicketNotFound
		}
		return models.Ticket{}, err
	}
	ticket.CustomerEmail = nullString(emailNull)
	ticket.ImageURL = nullString(imageNull)
	return ticket, nil
}

func (s *Store) DeleteTicket(ctx context.Context, businessID, ticketID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM tickets
		WHERE ticket_id = $1 AND business_id = $2
	`, ticketID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrTicketNotFound
	}
	return nil
}
