package services

import (
	"staylink/internal/models"
	"staylink/internal/repositories"

	"gorm.io/gorm"
)

const HousesPerPage = 10

type HouseService struct {
	db     *gorm.DB
	houses repositories.HouseRepository
}

func NewHouseService(db *gorm.DB, houses repositories.HouseRepository) *HouseService {
	return &HouseService{db: db, houses: houses}
}

func (s *HouseService) FindHouseByID(id uint) (*models.House, error) {
	return s.houses.FindByID(s.db, id)
}

func (s *HouseService) FindHousePage(page int) ([]models.House, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.houses.FindPage(s.db, page, HousesPerPage)
}
