// Package handler contains the HTTP route handlers.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/config"
	"github.com/trackslat/trackslat/database"
)

// maxTracksPerUser caps the number of tracks a single user may upload.
const maxTracksPerUser = 50

type Handler struct {
	store database.Store
	cfg   *config.Config
}

func New(store database.Store, cfg *config.Config) *Handler {
	return &Handler{
		store: store,
		cfg:   cfg,
	}
}

// render wraps c.HTML and always exposes the session user to the template,
// every page shows the login state in its header.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		data["user"] = auth.CurrentUser(c)
	}
	c.HTML(status, name, data)
}

// NotFound renders the dedicated not-found page. Missing rows are page
// content here, not errors.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", nil)
}
