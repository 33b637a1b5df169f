package handlers

import (
	"net/http"
	"strings"

	"staylink/internal/middleware"
	"staylink/internal/models"
	"staylink/internal/services"
	"staylink/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", gin.H{"Title": "Sign up"})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if username == "" || !strings.Contains(email, "@") {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{"Error": "Please enter a username and a valid email.", "Username": username, "Email": email})
		return
	}
	if len(password) < 6 {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{"Error": "Password must be at least 6 characters.", "Username": username, "Email": email})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not create the account.")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := h.users.CreateUser(&user); err != nil {
		Render(c, http.StatusConflict, "auth/signup.html", gin.H{"Error": "That email is already registered.", "Username": username})
		return
	}

	if err := middleware.SignIn(c, user.Email); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not start the session.")
		return
	}
	c.Redirect(http.StatusFound, "/houses")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := h.users.FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Wrong email or password.", "Email": email})
		return
	}

	if err := middleware.SignIn(c, user.Email); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not start the session.")
		return
	}
	c.Redirect(http.StatusFound, "/houses")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.SignOut(c)
	c.Redirect(http.StatusFound, "/houses")
}
