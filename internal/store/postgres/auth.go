package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// SignUp creates the owner identity first and the business row second. The
// two writes are deliberately not wrapped in a transaction: the original
// system performed them against separate backend calls, and a failure after
// the first write leaves an owner with no business. That orphan is an
// accepted gap; Login reports ErrBusinessNotFound for such owners.
func (s *Store) SignUp(ctx context.Context, input store.SignUpInput) (models.Owner, models.Business, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.BusinessName)
	if email == "" || input.Password == "" || name == "" {
		return models.Owner{}, models.Business{}, store.ErrValidation
	}

	var exists int
	row := s.pool.QueryRow(ctx, `SELECT COUNT(1) FROM owners WHERE lower(email) = $1`, email)
	if err := row.Scan(&exists); err != nil {
		return models.Owner{}, models.Business{}, err
	}
	if exists > 0 {
		return models.Owner{}, models.Business{}, store.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Owner{}, models.Business{}, err
	}

	owner := models.Owner{OwnerID: uuid.NewString(), Email: email}
	row = s.pool.QueryRow(ctx, `
		INSERT INTO owners (owner_id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, owner.OwnerID, owner.Email, string(hash))
	if err := row.Scan(&owner.CreatedAt); err != nil {
		return models.Owner{}, models.Business{}, err
	}

	business := models.Business{
		BusinessID: uuid.NewString(),
		OwnerID:    owner.OwnerID,
		Name:       name,
		Phone:      strings.TrimSpace(input.BusinessPhone),
		Email:      strings.TrimSpace(input.BusinessEmail),
	}
	row = s.pool.QueryRow(ctx, `
		INSERT INTO businesses (business_id, owner_id, name, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, business.BusinessID, business.OwnerID, business.Name, nullIfEmpty(business.Phone), nullIfEmpty(business.Email))
	if err := row.Scan(&business.CreatedAt); err != nil {
		return models.Owner{}, models.Business{}, err
	}

	return owner, business, nil
}

func (s *Store) Login(ctx context.Context, email, password string) (models.Session, models.Owner, error) {
	var owner models.Owner
	var passwordHash string
	row := s.pool.QueryRow(ctx, `
		SELECT owner_id, email, password_hash, created_at
		FROM owners
		WHERE lower(email) = lower($1)
	`, strings.TrimSpace(email))
	if err := row.Scan(&owner.OwnerID, &owner.Email, &passwordHash, &owner.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Session{}, models.Owner{}, store.ErrInvalidCredentials
		}
		return models.Session{}, models.Owner{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return models.Session{}, models.Owner{}, store.ErrInvalidCredentials
	}

	business, err := s.GetBusinessByOwner(ctx, owner.OwnerID)
	if err != nil {
		return models.Session{}, models.Owner{}, err
	}

	session := models.Session{
		SessionID:  uuid.NewString(),
		OwnerID:    owner.OwnerID,
		BusinessID: business.BusinessID,
		ExpiresAt:  time.Now().UTC().Add(s.sessionTTL),
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO sessions (session_id, owner_id, expires_at)
		VALUES ($1, $2, $3)
	`, session.SessionID, session.OwnerID, session.ExpiresAt)
	if err != nil {
		return models.Session{}, models.Owner{}, err
	}

	return session, owner, nil
}

func (s *Store) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	var session models.Session
	row := s.pool.QueryRow(ctx, `
		SELECT s.session_id, s.owner_id, b.business_id, s.expires_at
		FROM sessions s
		JOIN businesses b ON b.owner_id = s.owner_id
		WHERE s.session_id = $1 AND s.expires_at > NOW()
	`, sessionID)
	if err := row.Scan(&session.SessionID, &session.OwnerID, &session.BusinessID, &session.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Session{}, store.ErrSessionNotFound
		}
		return models.Session{}, err
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	return err
}
