package catalog

import (
	"context"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes the service. Pending or confirmed bookings block it.
func (uc *DeleteService) Execute(
	ctx context.Context,
	sess *auth.Session,
	serviceID uint,
) error {

	if sess == nil {
		return httperr.ErrAuth("not_authenticated")
	}

	s, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return err
	}

	if err := access.Authorize(sess, access.DeleteService, access.Resource{
		OwnerAccountID: s.Provider.AccountID,
	}).Err(); err != nil {
		return err
	}

	active, err := uc.repo.CountActiveBookings(ctx, s.ID)
	if err != nil {
		return err
	}
	if active > 0 {
		return httperr.ErrConflict("service_has_active_bookings")
	}

	if err := uc.repo.DeleteService(ctx, s.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "service_deleted",
		Entity:         "service",
		EntityID:       audit.Ptr(s.ID),
		Metadata:       map[string]any{"name": s.Name},
	})
	return nil
}
