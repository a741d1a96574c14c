package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
)

// adminAction enumerates the form actions the admin page can submit.
type adminAction string

const adminActionCreateUser adminAction = "create-user"

// AdminPage renders the user provisioning form. Role gating happens in the
// auth middleware.
func (h *Handler) AdminPage(c *gin.Context) {
	h.render(c, http.StatusOK, "admin.html", nil)
}

// Admin dispatches the submitted admin action. Unknown actions fall through
// to not-found.
func (h *Handler) Admin(c *gin.Context) {
	switch adminAction(c.PostForm("action")) {
	case adminActionCreateUser:
		h.adminCreateUser(c)
	default:
		h.NotFound(c)
	}
}

// adminCreateUser provisions an account with an arbitrary role. Unlike
// self-registration it applies no validation, admins are trusted with that.
func (h *Handler) adminCreateUser(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	role := c.PostForm("role")

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := h.store.CreateUser(c.Request.Context(), username, email, passwordHash, role)
	if err != nil {
		log.Error("failed to create user", "username", username, "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("created user", "username", username, "id", id)

	c.Redirect(http.StatusSeeOther, "/lon/admin")
}
