package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"staylink/internal/forms"
	"staylink/internal/models"
	"staylink/internal/repositories"
	"staylink/internal/services"
	"staylink/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews *services.ReviewService
	houses  *services.HouseService
}

func NewReviewHandler(reviews *services.ReviewService, houses *services.HouseService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, houses: houses}
}

// reviewView pairs a review with its rendered content for the templates.
type reviewView struct {
	models.Review
	ContentHTML template.HTML
}

func reviewViews(reviews []models.Review) []reviewView {
	views := make([]reviewView, len(reviews))
	for i, review := range reviews {
		views[i] = reviewView{
			Review:      review,
			ContentHTML: utils.RenderMarkdown(review.Content),
		}
	}
	return views
}

func houseDetailPath(houseID uint) string {
	return fmt.Sprintf("/houses/%d", houseID)
}

// resolveHouse loads the house from the path or redirects to the house
// listing with an error flash. Every review route starts here.
func (h *ReviewHandler) resolveHouse(c *gin.Context) (*models.House, bool) {
	houseID := utils.StringToUint(c.Param("houseId"))
	house, err := h.houses.FindHouseByID(houseID)
	if err != nil {
		RedirectWithFlash(c, FlashErrorKey, "The house does not exist.", "/houses")
		return nil, false
	}
	return house, true
}

// List shows one page of a house's reviews, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	house, ok := h.resolveHouse(c)
	if !ok {
		return
	}

	page := pageParam(c)
	reviews, total, err := h.reviews.FindReviewsByHouse(house.ID, page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load reviews.")
		return
	}

	Render(c, http.StatusOK, "reviews/index.html", gin.H{
		"Title":       "Reviews - " + house.Name,
		"House":       house,
		"Reviews":     reviewViews(reviews),
		"Total":       total,
		"CurrentPage": page,
		"TotalPages":  totalPages(total, services.ReviewsPerPage),
	})
}

func (h *ReviewHandler) ShowRegister(c *gin.Context) {
	house, ok := h.resolveHouse(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "reviews/register.html", gin.H{
		"Title": "Write a review - " + house.Name,
		"House": house,
		"Form":  forms.ReviewForm{},
	})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	house, ok := h.resolveHouse(c)
	if !ok {
		return
	}

	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		// Re-display with the submitted values; no redirect, input survives
		Render(c, http.StatusBadRequest, "reviews/register.html", gin.H{
			"Title":       "Write a review - " + house.Name,
			"House":       house,
			"Form":        form,
			"FieldErrors": forms.FieldErrors(err),
		})
		return
	}

	user := currentUser(c)
	_, err := h.reviews.CreateReview(house.ID, user.ID, &form)
	switch {
	case errors.Is(err, services.ErrAlreadyReviewed):
		RedirectWithFlash(c, FlashErrorKey, "You have already posted a review for this house.",
			houseDetailPath(house.ID)+"/reviews/register")
	case errors.Is(err, repositories.ErrHouseNotFound):
		RedirectWithFlash(c, FlashErrorKey, "The house does not exist.", "/houses")
	case errors.Is(err, repositories.ErrUserNotFound):
		RedirectWithFlash(c, FlashErrorKey, "The user does not exist.", "/houses")
	case err != nil:
		RenderError(c, http.StatusInternalServerError, "Failed to post the review.")
	default:
		RedirectWithFlash(c, FlashMessageKey, "Posted your review.", houseDetailPath(house.ID))
	}
}

func (h *ReviewHandler) ShowEdit(c *gin.Context) {
	house, ok := h.resolveHouse(c)
	if !ok {
		return
	}

	review, err := h.reviews.FindReviewByID(utils.StringToUint(c.Param("reviewId")))
	if err != nil {
		RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(house.ID))
		return
	}

	// Non-authors never see the edit form, direct URL or not
	user := currentUser(c)
	if review.UserID != user.ID {
		RedirectWithFlash(c, FlashErrorKey, "You do not have permission to edit this review.", houseDetailPath(house.ID))
		return
	}

	Render(c, http.StatusOK, "reviews/edit.html", gin.H{
		"Title":  "Edit review - " + house.Name,
		"House":  house,
		"Review": review,
		"Form":   forms.ReviewForm{Score: review.Score, Content: review.Content},
	})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	house, ok := h.resolveHouse(c)
	if !ok {
		return
	}
	reviewID := utils.StringToUint(c.Param("reviewId"))

	var form forms.ReviewForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		review, err := h.reviews.FindReviewByID(reviewID)
		if err != nil {
			RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(house.ID))
			return
		}
		Render(c, http.StatusBadRequest, "reviews/edit.html", gin.H{
			"Title":       "Edit review - " + house.Name,
			"House":       house,
			"Review":      review,
			"Form":        form,
			"FieldErrors": forms.FieldErrors(bindErr),
		})
		return
	}

	review, err := h.reviews.FindReviewByID(reviewID)
	if err != nil {
		RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(house.ID))
		return
	}
	user := currentUser(c)
	if review.UserID != user.ID {
		RedirectWithFlash(c, FlashErrorKey, "You do not have permission to edit this review.", houseDetailPath(house.ID))
		return
	}

	if _, err := h.reviews.UpdateReview(review.ID, &form); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(house.ID))
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to update the review.")
		return
	}

	RedirectWithFlash(c, FlashMessageKey, "Updated your review.", houseDetailPath(house.ID))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	houseID := utils.StringToUint(c.Param("houseId"))

	review, err := h.reviews.FindReviewByID(utils.StringToUint(c.Param("reviewId")))
	if err != nil {
		RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(houseID))
		return
	}

	user := currentUser(c)
	if review.UserID != user.ID {
		RedirectWithFlash(c, FlashErrorKey, "You do not have permission to delete this review.", houseDetailPath(houseID))
		return
	}

	if err := h.reviews.DeleteReview(review.ID); err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			RedirectWithFlash(c, FlashErrorKey, "The review does not exist.", houseDetailPath(houseID))
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to delete the review.")
		return
	}

	RedirectWithFlash(c, FlashMessageKey, "Deleted your review.", houseDetailPath(houseID))
}
