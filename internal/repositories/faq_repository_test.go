package repositories

import (
	"testing"

	"staylink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFaq(t *testing.T, db *gorm.DB, question string) *models.Faq {
	t.Helper()

	faq := &models.Faq{Question: question, Answer: "Please see the house rules."}
	require.NoError(t, db.Create(faq).Error)
	return faq
}

func TestFaqRepositoryFindPage(t *testing.T) {
	db := openTestDB(t)
	repo := NewFaqRepository()

	var last *models.Faq
	for i := 0; i < 7; i++ {
		last = seedFaq(t, db, "Question number "+string(rune('A'+i)))
	}

	first, total, err := repo.FindPage(db, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, first, 5)
	// Newest id first
	assert.Equal(t, last.ID, first[0].ID)

	second, total, err := repo.FindPage(db, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, second, 2)
}

func TestFaqRepositorySearchPage(t *testing.T) {
	db := openTestDB(t)
	repo := NewFaqRepository()
	seedFaq(t, db, "Can I get a refund after cancelling?")
	seedFaq(t, db, "Is there parking at the house?")
	seedFaq(t, db, "How do refunds work for early checkout?")

	faqs, total, err := repo.SearchPage(db, "refund", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, faqs, 2)
	for _, faq := range faqs {
		assert.Contains(t, faq.Question, "refund")
	}
}
