package handler

import (
	"net/http"
	"strings"
	"time"

	"portal/internal/repository"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PageHandler interface {
	Index(c *gin.Context)
	Admin(c *gin.Context)
}

type pageHandler struct {
	gate       *service.Gate
	users      repository.UserRepository
	cookieName string
	log        *logrus.Logger
}

func NewPageHandler(gate *service.Gate, users repository.UserRepository, cookieName string, log *logrus.Logger) PageHandler {
	return &pageHandler{gate: gate, users: users, cookieName: cookieName, log: log}
}

// NotFound writes the same response for a missing route and for a denied
// admin page, so probing cannot tell restricted paths from nonexistent ones.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
}

func (h *pageHandler) credential(c *gin.Context) string {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// Index handles GET /. This page is public knowledge, so an absent session
// may be revealed by redirecting to the login form.
func (h *pageHandler) Index(c *gin.Context) {
	claims, err := h.gate.Authorize(h.credential(c), time.Now(), "")
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"name":  claims.Subject,
		"admin": claims.HasRole("admin"),
	})
}

// Admin handles GET /admin/:page, dispatching the sub-path explicitly. Any
// failure — no cookie, bad token, expired session, missing role, unknown
// sub-path — yields the NotFound response.
func (h *pageHandler) Admin(c *gin.Context) {
	claims, err := h.gate.Authorize(h.credential(c), time.Now(), "admin")
	if err != nil {
		NotFound(c)
		return
	}

	switch c.Param("page") {
	case "index":
		h.adminIndex(c)
	case "user":
		h.adminUser(c, claims.Subject)
	default:
		NotFound(c)
	}
}

func (h *pageHandler) adminIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_index.html", gin.H{
		"message": "Congrats, you're an admin.",
	})
}

// adminUser re-reads the subject's row so the console shows live roles, not
// the token snapshot. A subject deleted since login gets the 404 like any
// other admin failure.
func (h *pageHandler) adminUser(c *gin.Context, username string) {
	user, err := h.users.GetUserByUsername(username)
	if err != nil {
		h.log.Errorf("Failed to retrieve %s: %v", username, err)
		NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "admin_user.html", gin.H{
		"username": user.Username,
		"roles":    strings.Join(user.Roles, ", "),
	})
}
