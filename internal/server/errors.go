package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ASHISH26940/bookshelf/internal/book"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// errorMap lists the domain errors that are the caller's fault. Anything else
// is reported as a server error.
var errorMap = []struct {
	err     error
	status  int
	message string
}{
	{err: book.ErrValidation, status: http.StatusBadRequest, message: "Invalid book data"},
	{err: book.ErrNotFound, status: http.StatusNotFound, message: "Book not found"},
}

// fail writes the response for err. fallback is the message used for server
// errors so that storage details never reach the client.
func (s *Server) fail(c *gin.Context, err error, fallback string) {
	for _, e := range errorMap {
		if !errors.Is(err, e.err) {
			continue
		}
		resp := errorResponse{Error: e.message}
		var fields validation.Errors
		if errors.As(err, &fields) {
			resp.Details = fields
		}
		c.JSON(e.status, resp)
		return
	}

	s.requestLog(c).Error().Err(err).Msg(fallback)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
}

// invalidBody answers a request whose body is not a JSON object of the
// expected shape.
func (s *Server) invalidBody(c *gin.Context, err error) {
	s.requestLog(c).Debug().Err(err).Msg("Rejected request body")
	c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid book data", Details: err.Error()})
}

// decodeStrict decodes a JSON object into v and rejects unknown fields. An
// empty body decodes as an empty object. Anything but whitespace after the
// object is an error.
func decodeStrict(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errSingleObject
	}
	return nil
}

var errSingleObject = errors.New("request body must contain a single JSON object")

func (s *Server) requestLog(c *gin.Context) *zerolog.Logger {
	l := s.log.With().Str("request_id", c.GetString(requestIDKey)).Logger()
	return &l
}
