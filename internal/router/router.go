package router

import (
	"staylink/internal/db"
	"staylink/internal/handlers"
	"staylink/internal/middleware"
	"staylink/internal/repositories"
	"staylink/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Repositories
	reviewRepo := repositories.NewReviewRepository()
	houseRepo := repositories.NewHouseRepository()
	userRepo := repositories.NewUserRepository()
	faqRepo := repositories.NewFaqRepository()

	// Services
	reviewService := services.NewReviewService(db.DB, reviewRepo, houseRepo, userRepo)
	houseService := services.NewHouseService(db.DB, houseRepo)
	userService := services.NewUserService(db.DB, userRepo)
	faqService := services.NewFaqService(db.DB, faqRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	houseHandler := handlers.NewHouseHandler(houseService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService, houseService)
	faqHandler := handlers.NewFaqHandler(faqService)

	// Public routes
	r.GET("/", houseHandler.List)
	r.GET("/houses", houseHandler.List)
	r.GET("/houses/:houseId", houseHandler.Detail)
	r.GET("/houses/:houseId/reviews", reviewHandler.List)
	r.GET("/faqs", faqHandler.Index)

	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Review mutation routes require a session; ownership checks happen in
	// the handlers, against the review's author
	authorized := r.Group("/houses/:houseId/reviews")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/register", reviewHandler.ShowRegister)
		authorized.POST("", reviewHandler.Create)
		authorized.GET("/:reviewId/edit", reviewHandler.ShowEdit)
		authorized.POST("/:reviewId", reviewHandler.Update)
		authorized.POST("/:reviewId/delete", reviewHandler.Delete)
	}
}
