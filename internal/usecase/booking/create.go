package booking

import (
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/models"
	"github.com/BruksfildServices01/hotel-services/internal/timezone"
	"github.com/BruksfildServices01/hotel-services/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, optional
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	tz          string
	defaultTime string

	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
	defaultTime string,
) *CreateBooking {
	return &CreateBooking{
		repo:        repo,
		audit:       audit,
		tz:          tz,
		defaultTime: defaultTime,
		now:         time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	sess *auth.Session,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := access.Authorize(sess, access.CreateBooking, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Date / time in the configured timezone
	// --------------------------------------------------
	day, err := timezone.ParseDate(uc.tz, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "date")
	}

	today := timezone.StartOfDay(uc.now().In(timezone.Location(uc.tz)))
	if day.Before(today) {
		return nil, httperr.ErrValidation("past_date", "date")
	}

	at := strings.TrimSpace(in.Time)
	if at == "" {
		at = uc.defaultTime
	}
	if !validators.IsTimeOfDay(at) {
		return nil, httperr.ErrValidation("invalid_time", "time")
	}

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	if in.ServiceID == 0 {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		GuestID:     sess.AccountID,
		ServiceID:   svc.ID,
		BookingDate: datatypes.Date(day),
		BookingTime: at,
		Status:      string(domain.InitialStatus()),
	}
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	b.Service = *svc

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "booking_created",
		Entity:         "booking",
		EntityID:       audit.Ptr(b.ID),
		Metadata: map[string]any{
			"service_id": svc.ID,
			"date":       day.Format(timezone.DateLayout),
			"time":       at,
		},
	})

	return b, nil
}
