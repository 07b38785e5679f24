// Package inkpost is a single-author blog publishing application built with
// Go, Echo, and templ. It serves server-rendered pages for creating,
// listing, viewing, editing, and deleting blog posts, persisted in SQLite.
//
// Users provide their own templ components via the ViewFuncs struct, and
// inkpost handles the handler logic, validation, middleware, and database
// operations.
package inkpost

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the app calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home        func(posts []BlogPost, flash string) templ.Component
	Post        func(post BlogPost, csrfToken string) templ.Component
	Editor      func(form PostForm, errs FieldErrors, isEdit bool, postID int64, csrfToken string) templ.Component
	About       func() templ.Component
	Contact     func() templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central inkpost application. It wires together the store,
// handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	staticDir string
}

// New creates a new inkpost App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, middleware, and routes, then starts the
// server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.bootstrap(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// bootstrap prepares everything short of listening, so tests can drive the
// Echo instance directly through httptest.
func (a *App) bootstrap() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("inkpost: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("inkpost: init store: %w", err)
	}
	a.Store = store

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/show_post/:id", a.handleShowPost)
	e.GET("/new_post", a.handleNewPostForm)
	e.POST("/new_post", a.handleCreatePost)
	e.GET("/edit_post/:id", a.handleEditPostForm)
	e.POST("/edit_post/:id", a.handleUpdatePost)
	// Deletion is a state change, so it rides on POST rather than GET.
	e.POST("/delete/:id", a.handleDeletePost)

	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("inkpost: required environment variable %s is not set", key)
	}
	return v
}
