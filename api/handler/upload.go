package handler

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/gpximport"
	"github.com/trackslat/trackslat/slug"
)

// UploadPage renders the GPX upload form.
func (h *Handler) UploadPage(c *gin.Context) {
	h.render(c, http.StatusOK, "upload.html", nil)
}

// Upload imports a GPX file as a new track owned by the session user.
func (h *Handler) Upload(c *gin.Context) {
	user := auth.MustUser(c)
	ctx := c.Request.Context()

	count, err := h.store.CountTracks(ctx, user.ID)
	if err != nil {
		log.Error("failed to count tracks", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	if count >= maxTracksPerUser {
		c.String(http.StatusOK, "You have reached the maximum number of tracks")
		return
	}

	fileHeader, err := c.FormFile("gpx")
	if err != nil {
		c.String(http.StatusOK, "No GPX file uploaded")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open uploaded file", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	defer file.Close() //nolint:errcheck

	track, err := gpximport.Parse(file, fileHeader.Filename)
	if err != nil {
		c.String(http.StatusOK, fmt.Sprintf("Could not read GPX file: %v", err))
		return
	}

	if errs := validateTrack(track); len(errs) > 0 {
		c.String(http.StatusOK, strings.Join(errs, ", "))
		return
	}

	trackSlug := slug.Make(track.Name)

	id, err := h.store.CreateTrack(ctx, track.Name, trackSlug, track.WKT, track.Activity, user.ID)
	if err != nil {
		log.Error("failed to insert track", "name", track.Name, "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	log.Info("inserted track", "name", track.Name, "id", id)

	c.Redirect(http.StatusSeeOther, "/lon/"+user.Username+"/"+trackSlug)
}

// validateTrack runs every check and collects all failures.
func validateTrack(track *gpximport.Track) []string {
	var errs []string

	if n := utf8.RuneCountInString(track.Name); n < 3 || n > 100 {
		errs = append(errs, "Name must be between 3 and 100 characters")
	}
	if utf8.RuneCountInString(track.Activity) > 20 {
		errs = append(errs, "Activity must be at most 20 characters")
	}

	return errs
}
