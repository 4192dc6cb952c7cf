package store

import "strings"

// ValidateTicketInput rejects a submission before any remote call is made.
// Name, phone, and description are required; category is optional and
// defaults downstream; email and image URL are free-form.
func ValidateTicketInput(input CreateTicketInput) error {
	if input.BusinessID == "" {
		return ErrValidation
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrValidation
	}
	return nil
}
