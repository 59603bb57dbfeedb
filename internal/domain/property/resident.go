package property

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/edificio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Service is an optional contracted service for a resident
type Service string

const (
	ServiceInternet Service = "internet"
	ServiceCable    Service = "cable"
	ServiceLaundry  Service = "laundry"
)

// IsValid checks if the service is a known one
func (s Service) IsValid() bool {
	switch s {
	case ServiceInternet, ServiceCable, ServiceLaundry:
		return true
	}
	return false
}

// Services is a set of contracted services stored as JSONB
type Services []Service

// Has reports whether the service is contracted
func (s Services) Has(service Service) bool {
	for _, v := range s {
		if v == service {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for JSONB storage
func (s Services) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *Services) Scan(value interface{}) error {
	if value == nil {
		*s = Services{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Services: unsupported type")
	}
	if len(bytes) == 0 {
		*s = Services{}
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Role distinguishes building administrators from regular residents
type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleAdmin    Role = "ADMIN"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	return r == RoleResident || r == RoleAdmin
}

// Resident is a person with an account in the building: a tenant of one of the
// apartments or an administrator. Debt is a derived denormalization, recomputed
// from eligible receipts minus approved payments on every payment mutation.
type Resident struct {
	shared.BaseAggregateRoot
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         Role            `json:"role"`
	Services     Services        `json:"services"`
	Debt         decimal.Decimal `json:"debt"`
}

// NewResident creates a new resident account
func NewResident(name, email string, role Role) (*Resident, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_RESIDENT_NAME", "Resident name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "A valid email address is required")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role is not valid")
	}
	return &Resident{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(email),
		Role:              role,
		Services:          Services{},
		Debt:              decimal.Zero,
	}, nil
}

// IsAdmin returns true for administrator accounts
func (r *Resident) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// SetServices replaces the contracted service set
func (r *Resident) SetServices(services Services) error {
	for _, s := range services {
		if !s.IsValid() {
			return shared.NewDomainError("INVALID_SERVICE", "Unknown service: "+string(s))
		}
	}
	r.Services = services
	r.IncrementVersion()
	return nil
}

// SetDebt stores a freshly recomputed debt value
func (r *Resident) SetDebt(debt decimal.Decimal) {
	r.Debt = debt
	r.IncrementVersion()
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug returns the object-store path segment derived from the resident name
func (r *Resident) Slug() string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(r.Name), "-")
	return strings.Trim(slug, "-")
}
