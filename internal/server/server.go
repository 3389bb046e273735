// Package server handles the HTTP API for the book collection.
package server

import (
	"net/http"

	"github.com/ASHISH26940/bookshelf/internal/book"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server is the HTTP front end of the book collection.
// It depends on book.Repository so the storage layer can be mocked in tests.
type Server struct {
	repo   book.Repository
	log    zerolog.Logger
	router *gin.Engine
}

// New creates a new Server instance.
func New(repo book.Repository, logger zerolog.Logger) *Server {
	s := &Server{
		repo:   repo,
		log:    logger.With().Str("component", "http").Logger(),
		router: gin.New(),
	}
	s.router.HandleMethodNotAllowed = true
	s.router.Use(
		Recovery(s.log),
		RequestID(),
		Logger(s.log),
	)
	s.registerRoutes()
	return s
}

// ServeHTTP makes our Server a standard http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// registerRoutes sets up the HTTP routing for the server.
func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleWelcome)
	s.router.GET("/health", s.handleHealth)

	books := s.router.Group("/books")
	{
		books.GET("", s.handleList)
		books.GET("/available", s.handleListAvailable)
		books.GET("/:id", s.handleGet)
		books.POST("", s.handleCreate)
		books.PUT("/:id", s.handleUpdate)
		books.DELETE("/:id", s.handleDelete)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})
}
