package repositories

import (
	"fmt"
	"strings"
	"testing"

	"staylink/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives each test its own in-memory database. The named
// shared-cache DSN keeps gorm's connection pool pointed at one database
// instead of one per connection.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.House{}, &models.Review{}, &models.Faq{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestHouse(t *testing.T, db *gorm.DB, name string) *models.House {
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
