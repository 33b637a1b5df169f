package handlers

import (
	"math"
	"net/http"
	"strconv"
	"staylink/internal/middleware"
	"staylink/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash keys. A flash survives exactly one redirect: queued before the
// redirect, read and cleared by the next Render.
const (
	FlashMessageKey = "message"
	FlashErrorKey   = "error_message"
)

// Render helper to inject common variables like 'current user' and any
// pending flash messages
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CurrentUserKey); exists {
		obj["CurrentUser"] = user
	}

	session := sessions.Default(c)
	if flashes := session.Flashes(FlashMessageKey); len(flashes) > 0 {
		obj["Message"] = flashes[0]
	}
	if flashes := session.Flashes(FlashErrorKey); len(flashes) > 0 {
		obj["ErrorMessage"] = flashes[0]
	}
	// Save clears the consumed flashes
	session.Save()

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RedirectWithFlash queues a one-shot message and sends the redirect.
func RedirectWithFlash(c *gin.Context, key, message, location string) {
	session := sessions.Default(c)
	session.AddFlash(message, key)
	session.Save()
	c.Redirect(http.StatusFound, location)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CurrentUserKey).(*models.User)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func totalPages(total int64, perPage int) int {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}
