package dashboard

import (
	"testing"
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
	"github.com/Avraham885/Customers-Services/internal/store"
)

func sampleTickets() []models.Ticket {
	day1 := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	return []models.Ticket{
		{TicketID: "t1", Status: models.StatusNew, CreatedAt: day1},
		{TicketID: "t2", Status: models.StatusNew, CreatedAt: day2},
		{TicketID: "t3", Status: models.StatusInProgress, CreatedAt: day1},
		{TicketID: "t4", Status: "urgent", CreatedAt: day2},
	}
}

func TestFilterByStatus(t *testing.T) {
	got := FilterByStatus(sampleTickets(), models.StatusNew)
	if len(got) != 2 {
		t.Fatalf("expected 2 tickets with status new, got %d", len(got))
	}
	for _, ticket := range got {
		if ticket.Status != models.StatusNew {
			t.Fatalf("ticket %s has status %q", ticket.TicketID, ticket.Status)
		}
	}
}

func TestFiltersCommute(t *testing.T) {
	tickets := sampleTickets()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	statuses := []string{"", models.StatusNew, models.StatusInProgress, "urgent", "missing"}
	for _, status := range statuses {
		a := FilterByDay(FilterByStatus(tickets, status), day, time.UTC)
		b := FilterByStatus(FilterByDay(tickets, day, time.UTC), status)
		if len(a) != len(b) {
			t.Fatalf("status %q: order-dependent filter results %d vs %d", status, len(a), len(b))
		}
		for i := range a {
			if a[i].TicketID != b[i].TicketID {
				t.Fatalf("status %q: result sets differ at %d", status, i)
			}
		}
	}
}

func TestFilterByDayUsesLocation(t *testing.T) {
	// 23:30 UTC on March 10 is already March 11 in UTC+2.
	tickets := []models.Ticket{{TicketID: "t1", CreatedAt: time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)}}
	tz := time.FixedZone("UTC+2", 2*3600)

	if got := FilterByDay(tickets, time.Date(2026, 3, 11, 8, 0, 0, 0, tz), tz); len(got) != 1 {
		t.Fatalf("expected match on March 11 in UTC+2, got %d", len(got))
	}
	if got := FilterByDay(tickets, time.Date(2026, 3, 10, 8, 0, 0, 0, tz), tz); len(got) != 0 {
		t.Fatalf("expected no match on March 10 in UTC+2, got %d", len(got))
	}
}

func TestStatusCountsSumEqualsTotal(t *testing.T) {
	tickets := sampleTickets()
	counts := StatusCounts(tickets, store.BuiltInStatuses())

	sum := 0
	for _, entry := range counts {
		sum += entry.Count
	}
	if sum != len(tickets) {
		t.Fatalf("counts sum %d, want %d", sum, len(tickets))
	}
}

func TestStatusCountsZeroAndUnknown(t *testing.T) {
	counts := StatusCounts(sampleTickets(), store.BuiltInStatuses())

	byName := make(map[string]StatusCount)
	for _, entry := range counts {
		byName[entry.Definition.Name] = entry
	}

	if byName[models.StatusClosed].Count != 0 {
		t.Fatalf("closed should report zero, got %d", byName[models.StatusClosed].Count)
	}
	urgent, ok := byName["urgent"]
	if !ok {
		t.Fatal("unconfigured status must still be counted")
	}
	if urgent.Count != 1 || urgent.Definition.Color != "gray" {
		t.Fatalf("unexpected unknown-status entry: %+v", urgent)
	}
}

func TestBadgeFallback(t *testing.T) {
	defs := store.MergeStatuses([]models.StatusDefinition{{StatusID: "s1", Name: "urgent", Color: "purple", Description: "Handle now"}})

	if badge := Badge("urgent", defs); badge.Color != "purple" {
		t.Fatalf("expected configured badge, got %+v", badge)
	}

	// A status whose definition was deleted renders gray and generic.
	badge := Badge("urgent-deleted", defs)
	if badge.Color != "gray" || badge.Description != "Unknown status" {
		t.Fatalf("expected gray fallback badge, got %+v", badge)
	}
	if badge.Name != "urgent-deleted" {
		t.Fatalf("fallback badge must keep the ticket's status text, got %q", badge.Name)
	}
}
