package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-services/internal/domain/account"
	"github.com/BruksfildServices01/hotel-services/internal/domain/booking"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetAccountByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&acc).Error; err != nil {
		return nil, notFound(err, "account_not_found")
	}
	return &acc, nil
}

func (r *AccountGormRepository) GetAccount(
	ctx context.Context,
	accountID uint,
) (*models.Account, error) {

	var acc models.Account
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&acc, accountID).Error; err != nil {
		return nil, notFound(err, "account_not_found")
	}
	return &acc, nil
}

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	a *models.Account,
	p *models.Provider,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Provider").Create(a).Error; err != nil {
			return conflict(err, "email_already_registered")
		}

		if p == nil {
			return nil
		}

		p.AccountID = a.ID
		if err := tx.Create(p).Error; err != nil {
			return conflict(err, "provider_already_exists")
		}
		a.Provider = p
		return nil
	})
}

func (r *AccountGormRepository) CountActiveProviderBookings(
	ctx context.Context,
	providerID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_id = ? AND bookings.status IN ?", providerID, booking.ActiveStatuses).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Cascade delete
// --------------------------------------------------

func (r *AccountGormRepository) DeleteAccount(
	ctx context.Context,
	accountID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prov models.Provider
		err := tx.Where("account_id = ?", accountID).First(&prov).Error
		switch {
		case err == nil:
			serviceIDs := tx.Unscoped().
				Model(&models.Service{}).
				Select("id").
				Where("provider_id = ?", prov.ID)

			if err := tx.Where("service_id IN (?)", serviceIDs).
				Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().
				Where("provider_id = ?", prov.ID).
				Delete(&models.Service{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&prov).Error; err != nil {
				return err
			}
		case !isNotFound(err):
			return err
		}

		if err := tx.Where("guest_id = ?", accountID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Account{}, accountID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "account_not_found")
		}
		return nil
	})
}

var _ domain.Repository = (*AccountGormRepository)(nil)
