package server

import (
	"net/http"
	"strconv"

	"github.com/ASHISH26940/bookshelf/internal/book"
	"github.com/gin-gonic/gin"
)

const welcomePage = `<h1>Books API</h1>
<p>Available endpoints:</p>
<ul>
  <li>GET /books - Get all books</li>
  <li>GET /books/available - Get available books</li>
  <li>GET /books/:id - Get a book</li>
  <li>POST /books - Add a new book</li>
  <li>PUT /books/:id - Update a book</li>
  <li>DELETE /books/:id - Delete a book</li>
</ul>
`

func (s *Server) handleWelcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
}

// handleHealth reports whether the data file can be read.
func (s *Server) handleHealth(c *gin.Context) {
	if _, err := s.repo.List(c.Request.Context()); err != nil {
		s.requestLog(c).Error().Err(err).Msg("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleList - GET /books
func (s *Server) handleList(c *gin.Context) {
	books, err := s.repo.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to fetch books")
		return
	}
	c.JSON(http.StatusOK, nonNil(books))
}

// handleListAvailable - GET /books/available
func (s *Server) handleListAvailable(c *gin.Context) {
	books, err := s.repo.ListAvailable(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to fetch available books")
		return
	}
	c.JSON(http.StatusOK, nonNil(books))
}

// handleGet - GET /books/:id
func (s *Server) handleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := s.repo.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, "Failed to fetch book")
		return
	}
	c.JSON(http.StatusOK, b)
}

// handleCreate - POST /books
func (s *Server) handleCreate(c *gin.Context) {
	var draft book.Draft
	if err := decodeStrict(c.Request, &draft); err != nil {
		s.invalidBody(c, err)
		return
	}

	created, err := s.repo.Create(c.Request.Context(), draft)
	if err != nil {
		s.fail(c, err, "Failed to add book")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdate - PUT /books/:id
// Only the fields present in the body are changed.
func (s *Server) handleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch book.Patch
	if err := decodeStrict(c.Request, &patch); err != nil {
		s.invalidBody(c, err)
		return
	}

	updated, err := s.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		s.fail(c, err, "Failed to update book")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDelete - DELETE /books/:id
func (s *Server) handleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := s.repo.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err, "Failed to delete book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// parseID reads the :id path parameter. Ids that are not positive integers
// cannot name a record, so they are answered with 404.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Book not found"})
		return 0, false
	}
	return id, true
}

// nonNil makes an empty result encode as [] rather than null.
func nonNil(c book.Collection) book.Collection {
	if c == nil {
		return book.Collection{}
	}
	return c
}
