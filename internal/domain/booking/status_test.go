package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

func TestTransitions(t *testing.T) {
	now := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	type action func(*models.Booking, time.Time) error

	cases := []struct {
		name string
		from Status
		act  action
		want Status
		ok   bool
	}{
		{"confirm pending", StatusPending, Confirm, StatusConfirmed, true},
		{"cancel pending", StatusPending, Cancel, StatusCancelled, true},
		{"complete pending", StatusPending, Complete, StatusPending, false},
		{"cancel confirmed", StatusConfirmed, Cancel, StatusCancelled, true},
		{"complete confirmed", StatusConfirmed, Complete, StatusCompleted, true},
		{"confirm confirmed", StatusConfirmed, Confirm, StatusConfirmed, false},
		{"confirm cancelled", StatusCancelled, Confirm, StatusCancelled, false},
		{"cancel cancelled", StatusCancelled, Cancel, StatusCancelled, false},
		{"complete cancelled", StatusCancelled, Complete, StatusCancelled, false},
		{"confirm completed", StatusCompleted, Confirm, StatusCompleted, false},
		{"cancel completed", StatusCompleted, Cancel, StatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &models.Booking{Status: string(tc.from)}
			err := tc.act(b, now)

			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("expected invalid_state, got %v", err)
			}
			if Status(b.Status) != tc.want {
				t.Errorf("expected status %s, got %s", tc.want, b.Status)
			}
		})
	}
}

func TestTransitionTimestamps(t *testing.T) {
	now := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(InitialStatus())}

	if err := Confirm(b, now); err != nil {
		t.Fatal(err)
	}
	if b.ConfirmedAt == nil || !b.ConfirmedAt.Equal(now) {
		t.Error("Expected ConfirmedAt to be set")
	}

	later := now.Add(time.Hour)
	if err := Complete(b, later); err != nil {
		t.Fatal(err)
	}
	if b.CompletedAt == nil || !b.CompletedAt.Equal(later) {
		t.Error("Expected CompletedAt to be set")
	}
	if !Status(b.Status).Terminal() {
		t.Error("completed is terminal")
	}
}
