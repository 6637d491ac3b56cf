package role

import (
	"testing"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

func TestParse(t *testing.T) {
	cases := map[string]Role{
		"guest":   Guest,
		" Hotel ": Hotel,
		"VENDOR":  Vendor,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "admin", "owner"} {
		if _, err := Parse(in); !httperr.IsBusiness(err, "invalid_role") {
			t.Errorf("Parse(%q) expected invalid_role, got %v", in, err)
		}
	}
}

func TestParseProviderKind(t *testing.T) {
	if _, err := ParseProviderKind("guest"); !httperr.IsBusiness(err, "invalid_provider_kind") {
		t.Errorf("guest must not be a provider kind, got %v", err)
	}
	if k, err := ParseProviderKind("vendor"); err != nil || k != Vendor {
		t.Errorf("expected vendor, got %s (%v)", k, err)
	}
}

func TestIsProvider(t *testing.T) {
	if Guest.IsProvider() {
		t.Error("guest is not a provider")
	}
	if !Hotel.IsProvider() || !Vendor.IsProvider() {
		t.Error("hotel and vendor are providers")
	}
}
