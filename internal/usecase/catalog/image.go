package catalog

import (
	"context"
	"io"

	"github.com/BruksfildServices01/hotel-services/internal/access"
	"github.com/BruksfildServices01/hotel-services/internal/audit"
	"github.com/BruksfildServices01/hotel-services/internal/auth"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/media"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type UploadServiceImage struct {
	repo     domain.Repository
	store    media.Store
	maxWidth int
	audit    *audit.Dispatcher
}

// NewUploadServiceImage accepts a nil store; uploads then fail with media_disabled.
func NewUploadServiceImage(
	repo domain.Repository,
	store media.Store,
	maxWidth int,
	audit *audit.Dispatcher,
) *UploadServiceImage {
	return &UploadServiceImage{
		repo:     repo,
		store:    store,
		maxWidth: maxWidth,
		audit:    audit,
	}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	sess *auth.Session,
	serviceID uint,
	image io.Reader,
) (*models.Service, error) {

	if sess == nil {
		return nil, httperr.ErrAuth("not_authenticated")
	}

	s, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(sess, access.UpdateService, access.Resource{
		OwnerAccountID: s.Provider.AccountID,
	}).Err(); err != nil {
		return nil, err
	}

	if uc.store == nil {
		return nil, httperr.ErrUnavailable("media_disabled")
	}

	data, err := media.EncodeWebP(image, uc.maxWidth)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.Put(ctx, media.ServiceImageKey(s.ID), media.ContentTypeWebP, data)
	if err != nil {
		return nil, err
	}

	s.ImageURL = url
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorAccountID: audit.Ptr(sess.AccountID),
		Action:         "service_image_uploaded",
		Entity:         "service",
		EntityID:       audit.Ptr(s.ID),
		Metadata:       map[string]any{"url": url, "bytes": len(data)},
	})

	return s, nil
}
