package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/database"
)

// LoginPage renders the credential form.
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

// Login checks the submitted credentials and establishes a session. It fails
// closed: unknown usernames and wrong passwords get the same answer.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.store.GetUserByUsername(c.Request.Context(), username)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		log.Error("failed to look up user", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		c.String(http.StatusOK, "Invalid username or password")
		return
	}

	if err := auth.SetUser(c, user.ID, user.Username, user.Role); err != nil {
		log.Error("failed to save session", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusSeeOther, "/lon/"+user.Username)
}

// Logout clears the whole session.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Clear(c); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/lon/")
}
