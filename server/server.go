package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/tgsurvey/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database

//go:embed templates static
var webFS embed.FS

// page templates, each parsed together with base and partials
const (
	pageSurvey  = "survey.html"
	pageResults = "results.html"
)

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	db      Database
	version string
	debug   bool

	lock          sync.Mutex
	httpServer    *http.Server
	router        *routegroup.Bundle
	templates     *template.Template            // partials, used for htmx responses
	pageTemplates map[string]*template.Template // full pages
}

// Database is the survey response store
type Database interface {
	Ping(ctx context.Context) error
	Insert(ctx context.Context, resp *domain.SurveyResponse) error
	Count(ctx context.Context) (int, error)
	SelectRange(ctx context.Context, from, to int) ([]domain.SurveyResponse, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetLimits() (throttle, maxBodySize int64)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		db:      db,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.loadTemplates()
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout * 2,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	throttle, maxBody := s.config.GetLimits()

	s.router.Use(rest.AppInfo("tgsurvey", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(throttle))
	s.router.Use(rest.SizeLimit(maxBody))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// pages
	s.router.HandleFunc("GET /{$}", s.surveyPageHandler)
	s.router.HandleFunc("POST /survey", s.submitSurveyHandler)
	s.router.HandleFunc("GET /results", s.resultsHandler)

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /options", s.optionsHandler)
		r.HandleFunc("GET /results", s.resultsAPIHandler)
	})

	staticFS, err := fs.Sub(webFS, "static")
	if err != nil {
		log.Printf("[ERROR] failed to open embedded static files: %v", err)
		return
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
}

// loadTemplates parses embedded templates. Partials are kept in one set for htmx responses,
// every page gets its own set with the base layout so page blocks don't collide.
func (s *Server) loadTemplates() {
	funcs := templateFuncs()

	s.templates = template.Must(template.New("").Funcs(funcs).ParseFS(webFS, "templates/partials/*.html"))

	s.pageTemplates = make(map[string]*template.Template)
	for _, page := range []string{pageSurvey, pageResults} {
		s.pageTemplates[page] = template.Must(template.New(page).Funcs(funcs).
			ParseFS(webFS, "templates/base.html", "templates/partials/*.html", "templates/"+page))
	}
}
