package services

import (
	"strings"

	"staylink/internal/models"
	"staylink/internal/repositories"

	"gorm.io/gorm"
)

const FaqsPerPage = 5

type FaqService struct {
	db   *gorm.DB
	faqs repositories.FaqRepository
}

func NewFaqService(db *gorm.DB, faqs repositories.FaqRepository) *FaqService {
	return &FaqService{db: db, faqs: faqs}
}

// FindAllFaqs lists FAQs newest-id first, filtered by a trimmed substring
// match on the question when a keyword is given. A blank keyword means the
// unfiltered set.
func (s *FaqService) FindAllFaqs(keyword string, page int) ([]models.Faq, int64, error) {
	if page < 1 {
		page = 1
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.faqs.FindPage(s.db, page, FaqsPerPage)
	}
	return s.faqs.SearchPage(s.db, keyword, page, FaqsPerPage)
}
