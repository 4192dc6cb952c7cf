package postgres

import (
	"context"
	"strings"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
)

func (s *Store) ListCategories(ctx context.Context, businessID string) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT category_id, business_id, name, is_active, created_at
		FROM ticket_categories
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.CategoryID, &category.BusinessID, &category.Name, &category.Active, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) AddCategory(ctx context.Context, businessID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, store.ErrValidation
	}

	category := models.Category{
		CategoryID: uuid.NewString(),
		BusinessID: businessID,
		Name:       name,
		Active:     true,
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO ticket_categories (category_id, business_id, name, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING created_at
	`, category.CategoryID, category.BusinessID, category.Name)
	if err := row.Scan(&category.CreatedAt); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// RemoveCategory is a hard delete. Tickets that already carry the category
// name keep it as free text.
func (s *Store) RemoveCategory(ctx context.Context, businessID, categoryID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM ticket_categories
		WHERE category_id = $1 AND business_id = $2
	`, categoryID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// ListStatuses returns the built-in definitions followed by the business's
// custom ones in creation order.
func (s *Store) ListStatuses(ctx context.Context, businessID string) ([]models.StatusDefinition, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT status_id, business_id, name, description, color, is_active, created_at
		FROM ticket_statuses
		WHERE business_id = $1 AND is_active = TRUE
		ORDER BY created_at ASC
	`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var custom []models.StatusDefinition
	for rows.Next() {
		var def models.StatusDefinition
		if err := rows.Scan(&def.StatusID, &def.BusinessID, &def.Name, &def.Description, &def.Color, &def.Active, &def.CreatedAt); err != nil {
			return nil, err
		}
		custom = append(custom, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store.MergeStatuses(custom), nil
}

func (s *Store) AddStatus(ctx context.Context, input store.AddStatusInput) (models.StatusDefinition, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.StatusDefinition{}, store.ErrValidation
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = "Custom status"
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = "blue"
	}

	def := models.StatusDefinition{
		StatusID:    uuid.NewString(),
		BusinessID:  input.BusinessID,
		Name:        name,
		Description: description,
		Color:       color,
		Active:      true,
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO ticket_statuses (status_id, business_id, name, description, color, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING created_at
	`, def.StatusID, def.BusinessID, def.Name, def.Description, def.Color)
	if err := row.Scan(&def.CreatedAt); err != nil {
		return models.StatusDefinition{}, err
	}
	return def, nil
}

// RemoveStatus hard-deletes a custom definition. Tickets carrying its name
// keep the stale value; the dashboard renders them with the gray fallback.
func (s *Store) RemoveStatus(ctx context.Context, businessID, statusID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM ticket_statuses
		WHERE status_id = $1 AND business_id = $2
	`, statusID, businessID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStatusNotFound
	}
	return nil
}
