package models

import "time"

type Business struct {
	BusinessID string    `json:"business_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BusinessSummary is what the public search endpoint exposes.
type BusinessSummary struct {
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
}

type Category struct {
	CategoryID string    `json:"category_id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatusDefinition is a named, colored triage label. Built-in definitions
// have an empty StatusID and BusinessID and are never persisted.
type StatusDefinition struct {
	StatusID    string    `json:"status_id,omitempty"`
	BusinessID  string    `json:"business_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	BuiltIn     bool      `json:"built_in"`
	Active      bool      `json:"active,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Ticket struct {
	TicketID      string    `json:"ticket_id"`
	BusinessID    string    `json:"business_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Owner struct {
	OwnerID   string    `json:"owner_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	SessionID  string    `json:"session_id"`
	OwnerID    string    `json:"owner_id"`
	BusinessID string    `json:"business_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusClosed     = "closed"

	// DefaultCategory is assigned when the customer leaves the
	// category selection empty.
	DefaultCategory = "general"
)
