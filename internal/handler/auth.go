package handler

import (
	"errors"
	"net/http"

	"portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler interface {
	LoginPage(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	authService     service.AuthService
	cookieName      string
	lifetimeSeconds int64
	log             *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, cookieName string, lifetimeSeconds int64, log *logrus.Logger) AuthHandler {
	return &authHandler{
		authService:     authService,
		cookieName:      cookieName,
		lifetimeSeconds: lifetimeSeconds,
		log:             log,
	}
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginPage handles GET /login
func (h *authHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login. Whatever goes wrong, the user lands back on the
// login page with no hint of whether the username exists.
func (h *authHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	tokenString, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Errorf("Failed to login user: %v", err)
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.SetCookie(h.cookieName, tokenString, int(h.lifetimeSeconds), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout. Clearing the cookie is all there is; the
// signature stays valid server-side until it expires. Safe to call with no
// session at all.
func (h *authHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
