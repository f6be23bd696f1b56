package repositories

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/models"
	"gorm.io/gorm"
)

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

func (r *BusinessRepository) FindByEmail(email string) (*models.Business, error) {
	var business models.Business
	err := r.db.Where("email = ?", email).First(&business).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) FindByID(id uint) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) Update(business *models.Business) error {
	return r.db.Save(business).Error
}

func (r *BusinessRepository) ExistsByNit(nit string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Business{}).Where("nit = ?", nit)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *BusinessRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.Business{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
