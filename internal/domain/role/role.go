package role

import (
	"strings"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

// Role is the closed set of account roles chosen at registration.
type Role string

const (
	Guest  Role = "guest"
	Hotel  Role = "hotel"
	Vendor Role = "vendor"
)

// Parse normalizes raw input into a Role.
func Parse(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Valid() {
		return "", httperr.ErrValidation("invalid_role", "role")
	}
	return r, nil
}

// ParseProviderKind accepts only the provider variants.
func ParseProviderKind(raw string) (Role, error) {
	r, err := Parse(raw)
	if err != nil || !r.IsProvider() {
		return "", httperr.ErrValidation("invalid_provider_kind", "provider_kind")
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case Guest, Hotel, Vendor:
		return true
	}
	return false
}

func (r Role) IsProvider() bool {
	return r == Hotel || r == Vendor
}

func (r Role) String() string {
	return string(r)
}
