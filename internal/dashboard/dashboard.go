// Package dashboard derives the owner's triage view from a fetched ticket
// list and the merged status definitions. Everything here is pure so the
// filter and count contracts can be tested without a store.
package dashboard

import (
	"time"

	"github.com/Avraham885/Customers-Services/internal/models"
)

// UnknownBadge is used for any ticket status that matches no configured
// definition, for example a custom status that was deleted after tickets
// were tagged with it.
var UnknownBadge = models.StatusDefinition{
	Name:        "",
	Description: "Unknown status",
	Color:       "gray",
}

// FilterByStatus keeps tickets whose status equals the given value. An
// empty status is a no-op filter.
func FilterByStatus(tickets []models.Ticket, status string) []models.Ticket {
	if status == "" {
		return tickets
	}
	var out []models.Ticket
	for _, ticket := range tickets {
		if ticket.Status == status {
			out = append(out, ticket)
		}
	}
	return out
}

// FilterByDay keeps tickets created on the same calendar day as day, in the
// given location. A nil location means server local time. FilterByDay and
// FilterByStatus commute: applying them in either order yields the same set.
func FilterByDay(tickets []models.Ticket, day time.Time, loc *time.Location) []models.Ticket {
	if loc == nil {
		loc = time.Local
	}
	wantY, wantM, wantD := day.In(loc).Date()
	var out []models.Ticket
	for _, ticket := range tickets {
		y, m, d := ticket.CreatedAt.In(loc).Date()
		if y == wantY && m == wantM && d == wantD {
			out = append(out, ticket)
		}
	}
	return out
}

// StatusCount pairs a definition with the number of tickets carrying its
// name. Definitions with no tickets report zero; statuses found on tickets
// but absent from the definitions are appended with the unknown badge so
// the counts never drop data.
type StatusCount struct {
	Definition models.StatusDefinition
	Count      int
}

func StatusCounts(tickets []models.Ticket, definitions []models.StatusDefinition) []StatusCount {
	counts := make([]StatusCount, 0, len(definitions))
	seen := make(map[string]int, len(definitions))
	for _, def := range definitions {
		if _, ok := seen[def.Name]; ok {
			// A custom status shadowing a built-in name shares its bucket.
			continue
		}
		seen[def.Name] = len(counts)
		counts = append(counts, StatusCount{Definition: def})
	}

	for _, ticket := range tickets {
		idx, ok := seen[ticket.Status]
		if !ok {
			badge := UnknownBadge
			badge.Name = ticket.Status
			seen[ticket.Status] = len(counts)
			counts = append(counts, StatusCount{Definition: badge})
			idx = seen[ticket.Status]
		}
		counts[idx].Count++
	}
	return counts
}

// Badge resolves the definition used to render a ticket's status, falling
// back to the generic gray badge when nothing matches.
func Badge(status string, definitions []models.StatusDefinition) models.StatusDefinition {
	for _, def := range definitions {
		if def.Name == status {
			return def
		}
	}
	badge := UnknownBadge
	badge.Name = status
	return badge
}
