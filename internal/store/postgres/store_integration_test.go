package postgres

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestCreateTicketVisibleInList(t *testing.T) {
	ctx := context.Background()
	st, pool, cleanup := setupTestStore(t, ctx)
	t.Cleanup(cleanup)

	businessID := seedBusiness(t, ctx, pool)

	ticket := createTicket(t, ctx, st, businessID, time.Now().UTC())

	tickets, err := st.ListTickets(ctx, businessID, store.TicketFilter{})
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].TicketID != ticket.TicketID {
		t.Fatalf("created ticket must be visible immediately, got %+v", tickets)
	}
	if tickets[0].Status != models.StatusNew {
		t.Fatalf("fresh tickets start as %q, got %q", models.StatusNew, tickets[0].Status)
	}
}

func TestUpdateTicketStatusLastWriteWins(t *testing.T) {
	ctx := context.Background()
	st, pool, cleanup := setupTestStore(t, ctx)
	t.Cleanup(cleanup)

	businessID := seedBusiness(t, ctx, pool)
	ticket := createTicket(t, ctx, st, businessID, time.Now().UTC())

	for _, status := range []string{models.StatusInProgress, "waiting-on-parts", models.StatusClosed} {
		if _, err := st.UpdateTicketStatus(ctx, businessID, ticket.TicketID, status); err != nil {
			t.Fatalf("update to %q: %v", status, err)
		}
	}

	tickets, err := st.ListTickets(ctx, businessID, store.TicketFilter{})
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].Status != models.StatusClosed {
		t.Fatalf("final status must equal the last update, got %+v", tickets)
	}
}

func TestRemoveDefinitionsKeepTicketValues(t *testing.T) {
	ctx := context.Background()
	st, pool, cleanup := setupTestStore(t, ctx)
	t.Cleanup(cleanup)

	businessID := seedBusiness(t, ctx, pool)

	category, err := st.AddCategory(ctx, businessID, "Hardware")
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	status, err := st.AddStatus(ctx, store.AddStatusInput{BusinessID: businessID, Name: "escalated"})
	if err != nil {
		t.Fatalf("add status: %v", err)
	}

	ticket, err := st.CreateTicket(ctx, store.CreateTicketInput{
		BusinessID:    businessID,
		CustomerName:  "Dana",
		CustomerPhone: "050-1234567",
		Category:      category.Name,
		Description:   "fan rattles under load",
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if _, err := st.UpdateTicketStatus(ctx, businessID, ticket.TicketID, status.Name); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if err := st.RemoveCategory(ctx, businessID, category.CategoryID); err != nil {
		t.Fatalf("remove category: %v", err)
	}
	if err := st.RemoveStatus(ctx, businessID, status.StatusID); err != nil {
		t.Fatalf("remove status: %v", err)
	}

	tickets, err := st.ListTickets(ctx, businessID, store.TicketFilter{})
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(tickets))
	}
	if tickets[0].Category != "Hardware" || tickets[0].Status != "escalated" {
		t.Fatalf("deleting definitions must not touch ticket values, got %+v", tickets[0])
	}
}

func TestListTicketsDayFilterAcrossTimezone(t *testing.T) {
	ctx := context.Background()
	st, pool, cleanup := setupTestStore(t, ctx)
	t.Cleanup(cleanup)

	businessID := seedBusiness(t, ctx, pool)
	loc := time.FixedZone("UTC+2", 2*60*60)

	// 23:30 UTC on Jan 12 is already Jan 13 in UTC+2.
	late := createTicket(t, ctx, st, businessID, time.Date(2026, 1, 12, 23, 30, 0, 0, time.UTC))
	early := createTicket(t, ctx, st, businessID, time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC))

	jan13 := time.Date(2026, 1, 13, 0, 0, 0, 0, loc)
	tickets, err := st.ListTickets(ctx, businessID, store.TicketFilter{Day: &jan13, Location: loc})
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].TicketID != late.TicketID {
		t.Fatalf("Jan 13 in UTC+2 must match only the 23:30 UTC ticket, got %+v", tickets)
	}

	jan12 := time.Date(2026, 1, 12, 0, 0, 0, 0, loc)
	tickets, err = st.ListTickets(ctx, businessID, store.TicketFilter{Day: &jan12, Location: loc})
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 1 || tickets[0].TicketID != early.TicketID {
		t.Fatalf("Jan 12 in UTC+2 must match only the morning ticket, got %+v", tickets)
	}
}

func setupTestStore(t *testing.T, ctx context.Context) (*Store, *pgxpool.Pool, func()) {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn == "" {
		t.Skip("TEST_DB_DSN or DB_DSN is required for integration tests")
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := createSchema(ctx, dsn, schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	pool, err := newPoolWithSchema(ctx, dsn, schema)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}

	if err := applyMigrations(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("apply migrations: %v", err)
	}

	st := NewStore(pool, Options{})
	cleanup := func() {
		pool.Close()
		_ = dropSchema(context.Background(), dsn, schema)
	}
	return st, pool, cleanup
}

func createSchema(ctx context.Context, dsn, schema string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	_, err = conn.Exec(ctx, "CREATE SCHEMA "+schema)
	return err
}

func dropSchema(ctx context.Context, dsn, schema string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	_, err = conn.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
	return err
}

func newPoolWithSchema(ctx context.Context, dsn, schema string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	return pgxpool.NewWithConfig(ctx, cfg)
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return err
		}
	}
	return nil
}

func seedBusiness(t *testing.T, ctx context.Context, pool *pgxpool.Pool) string {
	t.Helper()
	ownerID := uuid.NewString()
	businessID := uuid.NewString()
	if _, err := pool.Exec(ctx, `
		INSERT INTO owners (owner_id, email, password_hash) VALUES ($1, $2, 'x')
	`, ownerID, ownerID+"@example.test"); err != nil {
		t.Fatalf("insert owner: %v", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO businesses (business_id, owner_id, name) VALUES ($1, $2, 'Acme Repairs')
	`, businessID, ownerID); err != nil {
		t.Fatalf("insert business: %v", err)
	}
	return businessID
}

func createTicket(t *testing.T, ctx context.Context, st *Store, businessID string, createdAt time.Time) models.Ticket {
	t.Helper()
	ticket, err := st.CreateTicket(ctx, store.CreateTicketInput{
		BusinessID:    businessID,
		CustomerName:  "Dana",
		CustomerPhone: "050-1234567",
		Description:   "printer jams on every second page",
		CreatedAt:     createdAt,
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	return ticket
}
