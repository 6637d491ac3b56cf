package validators

import "testing"

func TestIsEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last+tag@hotel.example"}
	invalid := []string{"", "a", "a@", "@x.com", "a x@x.com"}

	for _, e := range valid {
		if !IsEmail(e) {
			t.Errorf("Expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsEmail(e) {
			t.Errorf("Expected %q to be invalid", e)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  B@X.Com "); got != "b@x.com" {
		t.Errorf("Expected b@x.com, got %q", got)
	}
}

func TestIsStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"12345":   false,
		"      ":  false,
		"123456":  true,
		"senha12": true,
	}
	for in, want := range cases {
		if got := IsStrongPassword(in); got != want {
			t.Errorf("IsStrongPassword(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	if IsEmailDomainValid("no-at-sign") {
		t.Error("Expected false without @")
	}
	if IsEmailDomainValid("trailing@") {
		t.Error("Expected false without a domain")
	}
}

func TestIsTimeOfDay(t *testing.T) {
	cases := map[string]bool{
		"09:00": true,
		"23:59": true,
		"24:00": false,
		"9:00":  false,
		"09:60": false,
		"":      false,
	}
	for in, want := range cases {
		if got := IsTimeOfDay(in); got != want {
			t.Errorf("IsTimeOfDay(%q) = %v, want %v", in, got, want)
		}
	}
}
