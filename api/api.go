// Package api wires the gin engine, the session store, and the routes.
package api

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mergestat/timediff"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/api/handler"
	"github.com/trackslat/trackslat/config"
	"github.com/trackslat/trackslat/database"
	"github.com/trackslat/trackslat/web"
)

type Server struct {
	cfg       *config.Config
	store     database.Store
	ginEngine *gin.Engine
	staticDir string
}

// New builds the HTTP server around an already constructed store. The pool
// lifecycle stays with the caller.
func New(cfg *config.Config, store database.Store, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		store:     store,
		ginEngine: gin.Default(),
		staticDir: "./web/static",
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(tmpl)

	s.setupSession()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("trackslat_session", store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".png"})))

	h := handler.New(s.store, s.cfg)

	s.ginEngine.Static("/static", s.staticDir)
	s.ginEngine.GET("/", h.Root)
	s.ginEngine.NoRoute(h.NotFound)

	lon := s.ginEngine.Group("/lon")
	lon.GET("/", h.Homepage)
	lon.GET("/login", h.LoginPage)
	lon.POST("/login", h.Login)
	lon.POST("/logout", h.Logout)
	lon.GET("/register", h.RegisterPage)
	lon.POST("/register", h.Register)

	upload := lon.Group("/upload", auth.RequireUser("/lon/login"))
	upload.GET("", h.UploadPage)
	upload.POST("", h.Upload)

	admin := lon.Group("/admin", auth.RequireAdmin())
	admin.GET("", h.AdminPage)
	admin.POST("", h.Admin)

	lon.GET("/:username", h.UserPage)
	lon.GET("/:username/:slug", h.Track)
	lon.POST("/:username/:slug", h.TrackAction)
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"activityEmoji": activityEmoji,
		"timediff": func(t time.Time) string {
			return timediff.TimeDiff(t)
		},
	}
}

func activityEmoji(activity string) string {
	switch activity {
	case "walking":
		return "🚶"
	default:
		return "❓"
	}
}
