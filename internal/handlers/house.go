package handlers

import (
	"net/http"

	"staylink/internal/middleware"
	"staylink/internal/models"
	"staylink/internal/services"
	"staylink/internal/utils"

	"github.com/gin-gonic/gin"
)

type HouseHandler struct {
	houses  *services.HouseService
	reviews *services.ReviewService
}

func NewHouseHandler(houses *services.HouseService, reviews *services.ReviewService) *HouseHandler {
	return &HouseHandler{houses: houses, reviews: reviews}
}

func (h *HouseHandler) List(c *gin.Context) {
	page := pageParam(c)
	houses, total, err := h.houses.FindHousePage(page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load houses.")
		return
	}

	Render(c, http.StatusOK, "house/list.html", gin.H{
		"Title":       "Houses",
		"Houses":      houses,
		"CurrentPage": page,
		"TotalPages":  totalPages(total, services.HousesPerPage),
	})
}

// Detail shows a house with its six most recent reviews and the review
// count. Logged-in guests who already reviewed get edit/delete links
// instead of the write button.
func (h *HouseHandler) Detail(c *gin.Context) {
	house, err := h.houses.FindHouseByID(utils.StringToUint(c.Param("houseId")))
	if err != nil {
		RedirectWithFlash(c, FlashErrorKey, "The house does not exist.", "/houses")
		return
	}

	topReviews, err := h.reviews.FindTop6ReviewsByHouse(house.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load reviews.")
		return
	}
	reviewCount, err := h.reviews.CountReviewsByHouse(house.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load reviews.")
		return
	}

	hasReviewed := false
	if user, exists := c.Get(middleware.CurrentUserKey); exists {
		hasReviewed, err = h.reviews.HasUserAlreadyReviewed(house.ID, user.(*models.User).ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Failed to load reviews.")
			return
		}
	}

	Render(c, http.StatusOK, "house/detail.html", gin.H{
		"Title":       house.Name,
		"House":       house,
		"Reviews":     reviewViews(topReviews),
		"ReviewCount": reviewCount,
		"HasReviewed": hasReviewed,
	})
}
