package middleware

import (
	"net/http"
	"staylink/internal/db"
	"staylink/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "current_user"

// sessionEmailKey is what the auth handlers store on login. The session
// carries the principal's email only; LoadUser resolves it to a record.
const sessionEmailKey = "user_email"

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionEmailKey) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// LoadUser runs first; a session email that no longer resolves to a
		// user (account removed) gets kicked back to login as well.
		if _, exists := c.Get(CurrentUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoadUser resolves the session email to a User and sets it on the context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email := session.Get(sessionEmailKey)

		if email != nil {
			var user models.User
			result := db.DB.Where("email = ?", email).First(&user)
			if result.Error == nil {
				c.Set(CurrentUserKey, &user)
			}
		}
		c.Next()
	}
}

// SignIn records the authenticated principal in the session.
func SignIn(c *gin.Context, email string) error {
	session := sessions.Default(c)
	session.Set(sessionEmailKey, email)
	return session.Save()
}

// SignOut clears the whole session, flash messages included.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
