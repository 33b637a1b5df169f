package services

import (
	"fmt"
	"strings"
	"testing"

	"staylink/internal/models"
	"staylink/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.House{}, &models.Review{}, &models.Faq{}))
	return db
}

func newTestReviewService(t *testing.T) (*ReviewService, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	svc := NewReviewService(db,
		repositories.NewReviewRepository(),
		repositories.NewHouseRepository(),
		repositories.NewUserRepository(),
	)
	return svc, db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{Username: name, Email: name + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createHouse(t *testing.T, db *gorm.DB, name string) *models.House {
	t.Helper()

	house := &models.House{
		Name:        name,
		Description: "A quiet place to stay.",
		Address:     "1-2-3 Somewhere",
		PricePerDay: 8000,
	}
	require.NoError(t, db.Create(house).Error)
	return house
}
