package timezone

import (
	"testing"
	"time"
)

func TestLocation_FallsBackToUTC(t *testing.T) {
	if Location("Not/AZone") != time.UTC {
		t.Error("Expected UTC fallback for an unknown zone")
	}
	if Location("") != time.UTC {
		t.Error("Expected UTC fallback for an empty zone")
	}
}

func TestStartOfDay(t *testing.T) {
	loc := Location("America/Sao_Paulo")
	in := time.Date(2030, 5, 17, 23, 59, 1, 5, loc)

	got := StartOfDay(in)
	want := time.Date(2030, 5, 17, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("UTC", "2099-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2099 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("Unexpected date %s", d)
	}

	if _, err := ParseDate("UTC", "01/01/2099"); err == nil {
		t.Error("Expected error for a non ISO date")
	}
}
