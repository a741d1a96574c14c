package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/database"
	"github.com/trackslat/trackslat/render"
)

// trackAction enumerates the form actions a track page can submit.
type trackAction string

const trackActionDelete trackAction = "DELETE"

// UserPage lists a user's tracks.
func (h *Handler) UserPage(c *gin.Context) {
	username := c.Param("username")
	ctx := c.Request.Context()

	user, err := h.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to look up user", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	tracks, err := h.store.ListTracksByUser(ctx, user.ID)
	if err != nil {
		log.Error("failed to list tracks", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	h.render(c, http.StatusOK, "user.html", gin.H{
		"username": user.Username,
		"tracks":   tracks,
	})
}

// Track shows a single track. A ".png" suffix on the slug switches to the
// rasterized image of the track's geometry.
func (h *Handler) Track(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	if strings.HasSuffix(slug, ".png") {
		h.trackImage(c, username, strings.TrimSuffix(slug, ".png"))
		return
	}

	track, err := h.store.GetTrackBySlug(c.Request.Context(), username, slug)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to look up track", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	h.render(c, http.StatusOK, "track.html", gin.H{
		"track": track,
	})
}

func (h *Handler) trackImage(c *gin.Context, username, slug string) {
	wkb, err := h.store.GetTrackGeometry(c.Request.Context(), username, slug)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to load track geometry", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	png, err := render.PNG(wkb)
	if err != nil {
		log.Error("failed to render track", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// TrackAction handles POSTs against a track page. Only the track's owner may
// act on it; everyone else is sent to the login page. Unknown methods fall
// through to not-found.
func (h *Handler) TrackAction(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	user := auth.CurrentUser(c)
	if user == nil || user.Username != username {
		c.Redirect(http.StatusSeeOther, "/lon/login")
		return
	}

	switch trackAction(c.PostForm("method")) {
	case trackActionDelete:
		// Deleting a slug that matches nothing is a silent success, the
		// route does not distinguish the two.
		if err := h.store.DeleteTrack(c.Request.Context(), slug, user.ID); err != nil {
			log.Error("failed to delete track", "slug", slug, "error", err)
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		c.Redirect(http.StatusSeeOther, "/lon/"+username)
	default:
		h.NotFound(c)
	}
}
