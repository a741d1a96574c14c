package handler

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
)

const registrationsClosed = "Registrations are closed"

// RegisterPage renders the registration form, unless registrations are
// closed, in which case both the page and the submission refuse.
func (h *Handler) RegisterPage(c *gin.Context) {
	if !h.cfg.RegistrationsOpen {
		c.String(http.StatusOK, registrationsClosed)
		return
	}
	h.render(c, http.StatusOK, "register.html", nil)
}

// Register creates a new account with role "user" and logs it in.
func (h *Handler) Register(c *gin.Context) {
	if !h.cfg.RegistrationsOpen {
		c.String(http.StatusOK, registrationsClosed)
		return
	}

	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if errs := validateRegistration(username, password, email); len(errs) > 0 {
		c.String(http.StatusOK, strings.Join(errs, ", "))
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := h.store.CreateUser(c.Request.Context(), username, email, passwordHash, auth.RoleUser)
	if err != nil {
		log.Error("failed to create user", "username", username, "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("registered user", "username", username, "id", id)

	if err := auth.SetUser(c, id, username, auth.RoleUser); err != nil {
		log.Error("failed to save session", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Redirect(http.StatusSeeOther, "/lon/"+username)
}

// validateRegistration runs every check and collects all failures instead of
// stopping at the first one.
func validateRegistration(username, password, email string) []string {
	var errs []string

	if !isAlphanumeric(username) {
		errs = append(errs, "Username must contain alphanumeric characters only")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 10 {
		errs = append(errs, "Username must be between 3 and 10 characters")
	}
	if n := utf8.RuneCountInString(password); n < 8 || n > 64 {
		errs = append(errs, "Password must be at least 8 characters and at most 64 characters")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs = append(errs, "Invalid email address")
	}

	return errs
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
