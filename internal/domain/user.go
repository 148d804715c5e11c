package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole is the closed set of platform roles. Stored literals are
// case-sensitive.
type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleOrganizer   UserRole = "organizer"
	UserRoleParticipant UserRole = "participant"
)

// ParseUserRole maps a stored literal to a UserRole. The comparison is
// case-sensitive: "Admin" is not a valid stored role.
func ParseUserRole(s string) (UserRole, error) {
	switch s {
	case "admin":
		return UserRoleAdmin, nil
	case "organizer":
		return UserRoleOrganizer, nil
	case "participant":
		return UserRoleParticipant, nil
	default:
		return "", ErrValidation("role", "invalid user role %q: must be one of admin, organizer, participant", s)
	}
}

func (r UserRole) String() string { return string(r) }

// User is a registered platform account, optionally linked to a company.
type User struct {
	ID         uuid.UUID
	KeycloakID string
	Email      string
	Name       string
	CompanyID  *uuid.UUID
	Role       UserRole
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateForCreation checks the invariants a new user must satisfy.
func (u *User) ValidateForCreation() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrValidation("name", "Name cannot be empty")
	}
	if len(u.Name) > 100 {
		return ErrValidation("name", "Name cannot exceed 100 characters")
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrValidation("email", "Email cannot be empty")
	}
	if !strings.Contains(u.Email, "@") || !strings.Contains(u.Email, ".") {
		return ErrValidation("email", "Invalid email format")
	}
	if strings.TrimSpace(u.KeycloakID) == "" {
		return ErrValidation("keycloak_id", "Keycloak ID cannot be empty")
	}
	return nil
}

// Deactivate marks the user inactive.
func (u *User) Deactivate(now time.Time) {
	u.IsActive = false
	u.UpdatedAt = now
}

// Activate marks the user active.
func (u *User) Activate(now time.Time) {
	u.IsActive = true
	u.UpdatedAt = now
}

// IndustryType classifies a company within the aquaculture industry.
type IndustryType string

const (
	IndustrySalmon IndustryType = "salmon"
	IndustryTrout  IndustryType = "trout"
	IndustryOther  IndustryType = "other"
)

// ParseIndustryType maps a stored literal to an IndustryType.
func ParseIndustryType(s string) (IndustryType, error) {
	switch strings.ToLower(s) {
	case "salmon":
		return IndustrySalmon, nil
	case "trout":
		return IndustryTrout, nil
	case "other":
		return IndustryOther, nil
	default:
		return "", ErrValidation("industry_type", "invalid industry type %q: must be one of salmon, trout, other", s)
	}
}

func (t IndustryType) String() string { return string(t) }

// Company is an organization users can belong to.
type Company struct {
	ID                uuid.UUID
	Name              string
	OrgNumber         *string
	Location          *string
	IndustryType      IndustryType
	IndustryTypeOther *string
	Website           *string
	Phone             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidateForCreation checks the invariants a new company must satisfy.
func (c *Company) ValidateForCreation() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrValidation("name", "Company name cannot be empty")
	}
	if c.IndustryType == "" {
		return ErrValidation("industry_type", "Industry type is required")
	}
	return nil
}

// CreateUserRequest carries validated input for creating a user.
type CreateUserRequest struct {
	KeycloakID string     `validate:"required"`
	Email      string     `validate:"required,email"`
	Name       string     `validate:"required,max=100"`
	CompanyID  *uuid.UUID `validate:"-"`
	Role       UserRole   `validate:"required,oneof=admin organizer participant"`
}

// Validate checks that the request is well-formed.
func (r *CreateUserRequest) Validate() error {
	return validateStruct(r)
}
