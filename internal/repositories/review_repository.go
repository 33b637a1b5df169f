package repositories

import (
	"errors"
	"staylink/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository is the query surface the review service works against.
// Every method takes the *gorm.DB handle so the service can run a whole
// operation on one transaction.
type ReviewRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Review, error)
	// FindByHouseAndUser returns (nil, nil) when the pair has no review.
	// Absence is an answer here, not an error.
	FindByHouseAndUser(db *gorm.DB, houseID, userID uint) (*models.Review, error)
	CountByHouse(db *gorm.DB, houseID uint) (int64, error)
	FindTopByHouse(db *gorm.DB, houseID uint, limit int) ([]models.Review, error)
	FindPageByHouse(db *gorm.DB, houseID uint, page, perPage int) ([]models.Review, int64, error)
	Save(db *gorm.DB, review *models.Review) error
	// DeleteByID is a silent no-op when the id is absent; callers that need
	// a not-found signal must check existence first.
	DeleteByID(db *gorm.DB, id uint) error
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) FindByID(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByHouseAndUser(db *gorm.DB, houseID, userID uint) (*models.Review, error) {
	var review models.Review
	err := db.Where("house_id = ? AND user_id = ?", houseID, userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CountByHouse(db *gorm.DB, houseID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("house_id = ?", houseID).Count(&count).Error
	return count, err
}

func (r *reviewRepository) FindTopByHouse(db *gorm.DB, houseID uint, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("User").
		Where("house_id = ?", houseID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindPageByHouse(db *gorm.DB, houseID uint, page, perPage int) ([]models.Review, int64, error) {
	var total int64
	if err := db.Model(&models.Review{}).Where("house_id = ?", houseID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	var reviews []models.Review
	err := db.Preload("User").
		Where("house_id = ?", houseID).
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) Save(db *gorm.DB, review *models.Review) error {
	return db.Save(review).Error
}

func (r *reviewRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&models.Review{}, id).Error
}
