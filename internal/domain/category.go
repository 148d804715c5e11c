package domain

import (
	"strings"
	"time"
)

// EventCategory classifies events. Categories use short human-chosen string
// ids ("conference", "workshop") rather than UUIDs.
type EventCategory struct {
	ID          string
	Name        string
	Description *string
	ColorHex    *string
	IconName    *string
	IsActive    bool
	CreatedAt   time.Time
}

// ValidateForCreation checks the invariants a new category must satisfy.
func (c *EventCategory) ValidateForCreation() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrValidation("id", "Category ID cannot be empty")
	}
	if strings.ContainsAny(c.ID, " \t\n") {
		return ErrValidation("id", "Category ID cannot contain whitespace")
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrValidation("name", "Category name cannot be empty")
	}
	if c.ColorHex != nil && !isHexColor(*c.ColorHex) {
		return ErrValidation("color_hex", "Color must be a hex value like #1A2B3C")
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// CreateEventCategoryRequest carries validated input for creating a category.
type CreateEventCategoryRequest struct {
	ID          string  `validate:"required,max=50"`
	Name        string  `validate:"required,max=100"`
	Description *string `validate:"omitempty,max=500"`
	ColorHex    *string `validate:"-"`
	IconName    *string `validate:"omitempty,max=50"`
}

// Validate checks that the request is well-formed.
func (r *CreateEventCategoryRequest) Validate() error {
	return validateStruct(r)
}
