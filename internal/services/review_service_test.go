package services

import (
	"testing"
	"time"

	"staylink/internal/forms"
	"staylink/internal/models"
	"staylink/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReviewAt(t *testing.T, db *gorm.DB, houseID, userID uint, score int, content string, createdAt time.Time) *models.Review {
	t.Helper()

	review := &models.Review{
		HouseID:   houseID,
		UserID:    userID,
		Score:     score,
		Content:   content,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(review).Error)
	return review
}

func TestCreateReview(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "create-house")
	user := createUser(t, db, "create-user")

	review, err := svc.CreateReview(house.ID, user.ID, &forms.ReviewForm{Score: 5, Content: "Wonderful stay."})
	require.NoError(t, err)
	assert.Equal(t, house.ID, review.HouseID)
	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, 5, review.Score)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReviewHouseNotFound(t *testing.T) {
	svc, db := newTestReviewService(t)
	user := createUser(t, db, "nohouse-user")

	_, err := svc.CreateReview(42, user.ID, &forms.ReviewForm{Score: 5, Content: "Great."})
	assert.ErrorIs(t, err, repositories.ErrHouseNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateReviewUserNotFound(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "nouser-house")

	_, err := svc.CreateReview(house.ID, 42, &forms.ReviewForm{Score: 5, Content: "Great."})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestCreateReviewAlreadyReviewed(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "dup-house")
	user := createUser(t, db, "dup-user")
	original := seedReviewAt(t, db, house.ID, user.ID, 4, "First impressions.", time.Now())

	_, err := svc.CreateReview(house.ID, user.ID, &forms.ReviewForm{Score: 1, Content: "Changed my mind."})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	// The existing review is untouched
	var kept models.Review
	require.NoError(t, db.First(&kept, original.ID).Error)
	assert.Equal(t, 4, kept.Score)
	assert.Equal(t, "First impressions.", kept.Content)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateReview(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "update-house")
	user := createUser(t, db, "update-user")
	createdAt := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	original := seedReviewAt(t, db, house.ID, user.ID, 2, "Too noisy.", createdAt)

	updated, err := svc.UpdateReview(original.ID, &forms.ReviewForm{Score: 4, Content: "Quieter on the second night."})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Score)
	assert.Equal(t, "Quieter on the second night.", updated.Content)

	var reloaded models.Review
	require.NoError(t, db.First(&reloaded, original.ID).Error)
	assert.Equal(t, 4, reloaded.Score)
	assert.Equal(t, house.ID, reloaded.HouseID)
	assert.Equal(t, user.ID, reloaded.UserID)
	assert.WithinDuration(t, createdAt, reloaded.CreatedAt, time.Second)
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc, _ := newTestReviewService(t)

	_, err := svc.UpdateReview(999, &forms.ReviewForm{Score: 3, Content: "Fine."})
	assert.ErrorIs(t, err, repositories.ErrReviewNotFound)
}

func TestDeleteReview(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "del-house")
	user := createUser(t, db, "del-user")
	review := seedReviewAt(t, db, house.ID, user.ID, 3, "Average.", time.Now())

	require.NoError(t, svc.DeleteReview(review.ID))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteReviewNotFound(t *testing.T) {
	svc, _ := newTestReviewService(t)

	err := svc.DeleteReview(999)
	assert.ErrorIs(t, err, repositories.ErrReviewNotFound)
}

func TestFindTop6ReviewsByHouse(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "top6-house")

	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	var newest *models.Review
	for i := 0; i < 9; i++ {
		user := createUser(t, db, "top6-user-"+string(rune('a'+i)))
		newest = seedReviewAt(t, db, house.ID, user.ID, 5, "Great.", base.Add(time.Duration(i)*time.Hour))
	}

	reviews, err := svc.FindTop6ReviewsByHouse(house.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 6)
	assert.Equal(t, newest.ID, reviews[0].ID)
}

func TestFindReviewsByHousePagination(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "paging-house")

	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		user := createUser(t, db, "paging-user-"+string(rune('a'+i)))
		seedReviewAt(t, db, house.ID, user.ID, 4, "Nice.", base.Add(time.Duration(i)*time.Minute))
	}

	first, total, err := svc.FindReviewsByHouse(house.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, first, ReviewsPerPage)

	second, _, err := svc.FindReviewsByHouse(house.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	// Page below 1 falls back to the first page
	clamped, _, err := svc.FindReviewsByHouse(house.ID, 0)
	require.NoError(t, err)
	assert.Len(t, clamped, ReviewsPerPage)
	assert.Equal(t, first[0].ID, clamped[0].ID)
}

func TestHasUserAlreadyReviewed(t *testing.T) {
	svc, db := newTestReviewService(t)
	house := createHouse(t, db, "has-house")
	author := createUser(t, db, "has-author")
	visitor := createUser(t, db, "has-visitor")
	seedReviewAt(t, db, house.ID, author.ID, 5, "Great.", time.Now())

	reviewed, err := svc.HasUserAlreadyReviewed(house.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)

	reviewed, err = svc.HasUserAlreadyReviewed(house.ID, visitor.ID)
	require.NoError(t, err)
	assert.False(t, reviewed)
}
