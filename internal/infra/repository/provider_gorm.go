package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-services/internal/domain/provider"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type ProviderGormRepository struct {
	db *gorm.DB
}

func NewProviderGormRepository(db *gorm.DB) *ProviderGormRepository {
	return &ProviderGormRepository{db: db}
}

func (r *ProviderGormRepository) GetAccount(
	ctx context.Context,
	accountID uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).First(&acc, accountID).Error; err != nil {
		return nil, notFound(err, "account_not_found")
	}
	return &acc, nil
}

func (r *ProviderGormRepository) CreateProvider(
	ctx context.Context,
	p *models.Provider,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return conflict(err, "provider_already_exists")
	}
	return nil
}

func (r *ProviderGormRepository) GetProviderByID(
	ctx context.Context,
	providerID uint,
) (*models.Provider, error) {
	return findProvider(r.db.WithContext(ctx).Where("id = ?", providerID))
}

func (r *ProviderGormRepository) GetProviderByAccount(
	ctx context.Context,
	accountID uint,
) (*models.Provider, error) {
	return findProvider(r.db.WithContext(ctx).Where("account_id = ?", accountID))
}

func (r *ProviderGormRepository) UpdateProvider(
	ctx context.Context,
	p *models.Provider,
) error {
	return r.db.WithContext(ctx).
		Model(p).
		Select("Name", "ContactEmail", "ServiceCategory").
		Updates(p).Error
}

func findProvider(q *gorm.DB) (*models.Provider, error) {
	var p models.Provider
	if err := q.First(&p).Error; err != nil {
		return nil, notFound(err, "provider_not_found")
	}
	return &p, nil
}

var _ domain.Repository = (*ProviderGormRepository)(nil)
