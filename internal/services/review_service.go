package services

import (
	"errors"
	"strings"

	"staylink/internal/forms"
	"staylink/internal/models"
	"staylink/internal/repositories"

	"gorm.io/gorm"
)

// ReviewsPerPage is the page size of the review listing.
const ReviewsPerPage = 10

// ErrAlreadyReviewed is a business-rule violation, not a missing record.
// Callers route it to a different page than the not-found errors.
var ErrAlreadyReviewed = errors.New("already reviewed this house")

type ReviewService struct {
	db      *gorm.DB
	reviews repositories.ReviewRepository
	houses  repositories.HouseRepository
	users   repositories.UserRepository
}

func NewReviewService(db *gorm.DB, reviews repositories.ReviewRepository, houses repositories.HouseRepository, users repositories.UserRepository) *ReviewService {
	return &ReviewService{
		db:      db,
		reviews: reviews,
		houses:  houses,
		users:   users,
	}
}

// FindReviewByID performs no ownership check; callers authorize separately.
func (s *ReviewService) FindReviewByID(id uint) (*models.Review, error) {
	return s.reviews.FindByID(s.db, id)
}

// FindReviewsByHouse returns one page of reviews, newest first, plus the
// total count for the pagination UI.
func (s *ReviewService) FindReviewsByHouse(houseID uint, page int) ([]models.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.reviews.FindPageByHouse(s.db, houseID, page, ReviewsPerPage)
}

func (s *ReviewService) FindTop6ReviewsByHouse(houseID uint) ([]models.Review, error) {
	return s.reviews.FindTopByHouse(s.db, houseID, 6)
}

func (s *ReviewService) CountReviewsByHouse(houseID uint) (int64, error) {
	return s.reviews.CountByHouse(s.db, houseID)
}

func (s *ReviewService) HasUserAlreadyReviewed(houseID, userID uint) (bool, error) {
	review, err := s.reviews.FindByHouseAndUser(s.db, houseID, userID)
	if err != nil {
		return false, err
	}
	return review != nil, nil
}

// CreateReview checks house and user existence and the one-review-per-user
// rule, then inserts, all on one transaction. The unique index on
// (house_id, user_id) backs up the duplicate check under concurrent
// submits; a violation surfaces as ErrAlreadyReviewed as well.
func (s *ReviewService) CreateReview(houseID, userID uint, form *forms.ReviewForm) (*models.Review, error) {
	var review *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		house, err := s.houses.FindByID(tx, houseID)
		if err != nil {
			return err
		}
		user, err := s.users.FindByID(tx, userID)
		if err != nil {
			return err
		}

		existing, err := s.reviews.FindByHouseAndUser(tx, house.ID, user.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyReviewed
		}

		review = &models.Review{
			HouseID: house.ID,
			UserID:  user.ID,
			Score:   form.Score,
			Content: form.Content,
		}
		if err := s.reviews.Save(tx, review); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyReviewed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview overwrites score and content only. House, author and
// created_at stay as they are.
func (s *ReviewService) UpdateReview(reviewID uint, form *forms.ReviewForm) (*models.Review, error) {
	var review *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		review, err = s.reviews.FindByID(tx, reviewID)
		if err != nil {
			return err
		}

		review.Score = form.Score
		review.Content = form.Content
		return s.reviews.Save(tx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview checks existence first: the storage layer deletes absent
// ids silently, and that must not pass as success.
func (s *ReviewService) DeleteReview(reviewID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.reviews.FindByID(tx, reviewID); err != nil {
			return err
		}
		return s.reviews.DeleteByID(tx, reviewID)
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
