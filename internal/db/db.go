package db

import (
	"log"
	"os"
	"staylink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=staylink port=5432 sslmode=disable TimeZone=Asia/Tokyo"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.House{},
		&models.Review{},
		&models.Faq{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedHouses()
	seedFaqs()
}

func seedHouses() {
	var count int64
	DB.Model(&models.House{}).Count(&count)
	if count > 0 {
		log.Println("Houses already seeded, skipping")
		return
	}

	houses := []models.House{
		{Name: "Bamboo Grove Guesthouse", Description: "A quiet guesthouse at the edge of a bamboo forest.", Address: "Kyoto", PricePerDay: 8000},
		{Name: "Seaside Villa Shiosai", Description: "Ocean view from every room, five minutes to the beach.", Address: "Kamakura", PricePerDay: 15000},
		{Name: "Old Town Machiya", Description: "Restored townhouse in the historic district.", Address: "Kanazawa", PricePerDay: 12000},
	}

	for _, house := range houses {
		if err := DB.Create(&house).Error; err != nil {
			log.Printf("Failed to create house %s: %v", house.Name, err)
		}
	}
	log.Println("Initial houses created successfully")
}

func seedFaqs() {
	var count int64
	DB.Model(&models.Faq{}).Count(&count)
	if count > 0 {
		log.Println("FAQs already seeded, skipping")
		return
	}

	faqs := []models.Faq{
		{Question: "How do I cancel a reservation?", Answer: "Open the reservation from your account page and choose cancel. Cancellation fees depend on the house."},
		{Question: "Can I get a refund after cancelling?", Answer: "Refunds are issued to the original payment method within 7 business days."},
		{Question: "Is check-in possible after 10pm?", Answer: "Late check-in depends on the house. Contact the host before booking."},
		{Question: "How do I post a review?", Answer: "Open the house page after your stay and choose 'Write a review'. One review per house per account."},
		{Question: "Can I edit my review later?", Answer: "Yes. You can edit or delete your own review at any time from the house's review page."},
		{Question: "Do houses allow pets?", Answer: "Pet policy is listed on each house page. Most houses do not allow pets."},
	}

	for _, faq := range faqs {
		if err := DB.Create(&faq).Error; err != nil {
			log.Printf("Failed to create faq %q: %v", faq.Question, err)
		}
	}
	log.Println("Initial FAQs created successfully")
}
