package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/database"
)

// Root redirects the bare domain to the track listing.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/lon/")
}

// Homepage renders the map page. With ?format=json it returns the aggregate
// extent plus every track's geometry as GeoJSON strings, which is what the
// Leaflet frontend feeds on. Unknown formats are a not-found.
func (h *Handler) Homepage(c *gin.Context) {
	switch c.Query("format") {
	case "", "html":
		h.render(c, http.StatusOK, "index.html", nil)
	case "json":
		h.homepageJSON(c)
	default:
		h.NotFound(c)
	}
}

func (h *Handler) homepageJSON(c *gin.Context) {
	ctx := c.Request.Context()

	aggregates, err := h.store.TracksExtent(ctx)
	if err != nil {
		log.Error("failed to load tracks extent", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	tracks, err := h.store.ListTracks(ctx)
	if err != nil {
		log.Error("failed to list tracks", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	if tracks == nil {
		tracks = []database.TrackFeature{}
	}

	c.JSON(http.StatusOK, gin.H{
		"aggregates": aggregates,
		"tracks":     tracks,
	})
}
