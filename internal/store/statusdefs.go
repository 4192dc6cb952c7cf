package store

import "github.com/Avraham885/Customers-Services/internal/models"

// Built-in statuses exist only in memory. They always precede custom
// definitions, in this order, and a custom status that reuses a built-in
// name is kept alongside it rather than deduplicated.
var builtInStatuses = []models.StatusDefinition{
	{Name: models.StatusNew, Description: "Just arrived, not yet handled", Color: "red", BuiltIn: true},
	{Name: models.StatusInProgress, Description: "Being worked on", Color: "yellow", BuiltIn: true},
	{Name: models.StatusClosed, Description: "Resolved", Color: "green", BuiltIn: true},
}

func BuiltInStatuses() []models.StatusDefinition {
	out := make([]models.StatusDefinition, len(builtInStatuses))
	copy(out, builtInStatuses)
	return out
}

// MergeStatuses prepends the built-ins to the persisted custom definitions.
// Custom definitions are expected in creation order.
func MergeStatuses(custom []models.StatusDefinition) []models.StatusDefinition {
	merged := BuiltInStatuses()
	return append(merged, custom...)
}
