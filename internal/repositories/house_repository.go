package repositories

import (
	"errors"
	"staylink/internal/models"

	"gorm.io/gorm"
)

var ErrHouseNotFound = errors.New("house not found")

type HouseRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.House, error)
	FindPage(db *gorm.DB, page, perPage int) ([]models.House, int64, error)
}

type houseRepository struct{}

func NewHouseRepository() HouseRepository {
	return &houseRepository{}
}

func (r *houseRepository) FindByID(db *gorm.DB, id uint) (*models.House, error) {
	var house models.House
	err := db.First(&house, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return &house, nil
}

func (r *houseRepository) FindPage(db *gorm.DB, page, perPage int) ([]models.House, int64, error) {
	var total int64
	if err := db.Model(&models.House{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	var houses []models.House
	err := db.Order("id ASC").Limit(perPage).Offset(offset).Find(&houses).Error
	return houses, total, err
}
