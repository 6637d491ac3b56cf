package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	domain "github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *CatalogGormRepository) GetProviderByID(
	ctx context.Context,
	providerID uint,
) (*models.Provider, error) {
	return findProvider(r.db.WithContext(ctx).Where("id = ?", providerID))
}

func (r *CatalogGormRepository) GetProviderByAccount(
	ctx context.Context,
	accountID uint,
) (*models.Provider, error) {
	return findProvider(r.db.WithContext(ctx).Where("account_id = ?", accountID))
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Preload("Provider")
	if filter.ProviderKind != "" {
		q = q.Where("provider_kind = ?", filter.ProviderKind)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) ListServicesForProvider(
	ctx context.Context,
	providerID uint,
	kind string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("provider_id = ? AND provider_kind = ?", providerID, kind).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&s, serviceID).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Omit("Provider").Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).
		Model(s).
		Select("Name", "Description", "Price", "DurationMin", "ImageURL").
		Updates(s).Error
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	serviceID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Service{}, serviceID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "service_not_found")
	}
	return nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *CatalogGormRepository) CountActiveBookings(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("service_id = ? AND status IN ?", serviceID, booking.ActiveStatuses).
		Count(&count).Error
	return count, err
}

var _ domain.Repository = (*CatalogGormRepository)(nil)
