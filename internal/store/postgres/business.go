package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/jackc/pgx/v5"
)

func (s *Store) GetBusinessByOwner(ctx context.Context, ownerID string) (models.Business, error) {
	return s.getBusiness(ctx, `
		SELECT business_id, owner_id, name, phone, email, created_at
		FROM businesses
		WHERE owner_id = $1
	`, ownerID)
}

func (s *Store) GetBusiness(ctx context.Context, businessID string) (models.Business, error) {
	return s.getBusiness(ctx, `
		SELECT business_id, owner_id, name, phone, email, created_at
		FROM businesses
		WHERE business_id = $1
	`, businessID)
}

func (s *Store) getBusiness(ctx context.Context, query, arg string) (models.Business, error) {
	var business models.Business
	var phoneNull, emailNull sql.NullString
	row := s.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&business.BusinessID, &business.OwnerID, &business.Name, &phoneNull, &emailNull, &business.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Business{}, store.ErrBusinessNotFound
		}
		return models.Business{}, err
	}
	business.Phone = nullString(phoneNull)
	business.Email = nullString(emailNull)
	return business, nil
}

// SearchBusinesses matches the query as a case-insensitive substring of the
// business name. The minimum-length policy lives with the callers; the store
// runs whatever query it is handed.
func (s *Store) SearchBusinesses(ctx context.Context, query string, limit int) ([]models.BusinessSummary, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.pool.Query(ctx, `
		SELECT business_id, name
		FROM businesses
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.BusinessSummary
	for rows.Next() {
		var summary models.BusinessSummary
		if err := rows.Scan(&summary.BusinessID, &summary.Name); err != nil {
			return nil, err
		}
		results = append(results, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
