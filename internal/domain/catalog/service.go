package catalog

import (
	"math"
	"strings"

	"github.com/BruksfildServices01/hotel-services/internal/domain/role"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

// Attrs are the caller-editable fields of a service listing.
type Attrs struct {
	Name        string
	Description string
	Price       float64
	DurationMin int
}

// Filter narrows the public catalog; an empty ProviderKind lists everything.
type Filter struct {
	ProviderKind role.Role
}

func (a *Attrs) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Description = strings.TrimSpace(a.Description)
}

func (a Attrs) Validate() error {
	if a.Name == "" {
		return httperr.ErrValidation("name_required", "name")
	}
	if a.Price < 0 || math.IsNaN(a.Price) || math.IsInf(a.Price, 0) {
		return httperr.ErrValidation("invalid_price", "price")
	}
	if a.DurationMin <= 0 {
		return httperr.ErrValidation("invalid_duration", "duration")
	}
	return nil
}
