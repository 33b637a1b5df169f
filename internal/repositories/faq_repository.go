package repositories

import (
	"staylink/internal/models"

	"gorm.io/gorm"
)

type FaqRepository interface {
	FindPage(db *gorm.DB, page, perPage int) ([]models.Faq, int64, error)
	// SearchPage matches the question column with LIKE %keyword%.
	SearchPage(db *gorm.DB, keyword string, page, perPage int) ([]models.Faq, int64, error)
}

type faqRepository struct{}

func NewFaqRepository() FaqRepository {
	return &faqRepository{}
}

func (r *faqRepository) FindPage(db *gorm.DB, page, perPage int) ([]models.Faq, int64, error) {
	var total int64
	if err := db.Model(&models.Faq{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	var faqs []models.Faq
	err := db.Order("id DESC").Limit(perPage).Offset(offset).Find(&faqs).Error
	return faqs, total, err
}

func (r *faqRepository) SearchPage(db *gorm.DB, keyword string, page, perPage int) ([]models.Faq, int64, error) {
	pattern := "%" + keyword + "%"

	var total int64
	if err := db.Model(&models.Faq{}).Where("question LIKE ?", pattern).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	var faqs []models.Faq
	err := db.Where("question LIKE ?", pattern).Order("id DESC").Limit(perPage).Offset(offset).Find(&faqs).Error
	return faqs, total, err
}
