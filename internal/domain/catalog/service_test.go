package catalog

import (
	"math"
	"testing"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

func TestAttrsValidate(t *testing.T) {
	cases := []struct {
		name  string
		attrs Attrs
		code  string
	}{
		{"valid", Attrs{Name: "Spa", Price: 50, DurationMin: 60}, ""},
		{"free service", Attrs{Name: "Welcome drink", Price: 0, DurationMin: 5}, ""},
		{"missing name", Attrs{Price: 1, DurationMin: 1}, "name_required"},
		{"negative price", Attrs{Name: "Spa", Price: -0.01, DurationMin: 60}, "invalid_price"},
		{"nan price", Attrs{Name: "Spa", Price: math.NaN(), DurationMin: 60}, "invalid_price"},
		{"zero duration", Attrs{Name: "Spa", Price: 10, DurationMin: 0}, "invalid_duration"},
		{"negative duration", Attrs{Name: "Spa", Price: 10, DurationMin: -5}, "invalid_duration"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.attrs.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
			if !httperr.IsKind(err, httperr.KindValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestAttrsNormalize(t *testing.T) {
	a := Attrs{Name: "  Spa ", Description: " Relax\n"}
	a.Normalize()
	if a.Name != "Spa" || a.Description != "Relax" {
		t.Errorf("Unexpected normalized attrs %+v", a)
	}
}
