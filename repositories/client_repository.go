package repositories

import (
	"errors"

	"github.com/ancorzize0250/lokknowback/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) FindByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("email = ?", email).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) ExistsByIdentification(identification string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("identification = ?", identification).Count(&count).Error
	return count > 0, err
}

func (r *ClientRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
