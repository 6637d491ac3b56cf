package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

// transition loads a booking, checks the caller may act on it, applies a
// domain action and persists the result.
type transition struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	action access.Action
	apply  func(*models.Booking, time.Time) error
	event  string
	now    func() time.Time
}

func (t *transition) execute(
	ctx context.Context,
	sess *auth.Session,
	bookingID uint,
) (*models.Booking, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	b, err := t.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(sess, t.action, resourceOf(b)).Err(); err != nil {
		return nil, err
	}

	from := b.Status
	if err := t.apply(b, t.now()); err != nil {
		return nil, err
	}

	if err := t.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	t.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         t.event,
		Entity:         "booking",
		EntityID:       audit.Ptr(b.ID),
		Metadata:       map[string]any{"from": from, "to": b.Status},
	})

	return b, nil
}

// ======================================================
// CONFIRM
// ======================================================

type ConfirmBooking struct{ transition }

func NewConfirmBooking(repo domain.Repository, audit *audit.Dispatcher) *ConfirmBooking {
	return &ConfirmBooking{transition{
		repo:   repo,
		audit:  audit,
		action: access.ConfirmBooking,
		apply:  domain.Confirm,
		event:  "booking_confirmed",
		now:    time.Now,
	}}
}

func (uc *ConfirmBooking) Execute(ctx context.Context, sess *auth.Session, bookingID uint) (*models.Booking, error) {
	return uc.execute(ctx, sess, bookingID)
}

// ======================================================
// CANCEL
// ======================================================

type CancelBooking struct{ transition }

func NewCancelBooking(repo domain.Repository, audit *audit.Dispatcher) *CancelBooking {
	return &CancelBooking{transition{
		repo:   repo,
		audit:  audit,
		action: access.CancelBooking,
		apply:  domain.Cancel,
		event:  "booking_cancelled",
		now:    time.Now,
	}}
}

func (uc *CancelBooking) Execute(ctx context.Context, sess *auth.Session, bookingID uint) (*models.Booking, error) {
	return uc.execute(ctx, sess, bookingID)
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteBooking struct{ transition }

func NewCompleteBooking(repo domain.Repository, audit *audit.Dispatcher) *CompleteBooking {
	return &CompleteBooking{transition{
		repo:   repo,
		audit:  audit,
		action: access.CompleteBooking,
		apply:  domain.Complete,
		event:  "booking_completed",
		now:    time.Now,
	}}
}

func (uc *CompleteBooking) Execute(ctx context.Context, sess *auth.Session, bookingID uint) (*models.Booking, error) {
	return uc.execute(ctx, sess, bookingID)
}
