// Package store owns the durable book collection. Every load-mutate-save
// sequence runs under an exclusive lock so concurrent requests are applied one
// at a time; reads share the lock and always see a complete file.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/ASHISH26940/bookshelf/internal/book"
	"github.com/ASHISH26940/bookshelf/internal/persistence"
	"github.com/rs/zerolog"
)

// ErrStorageUnavailable is returned when the data file cannot be read, parsed
// or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store is a file-backed book collection that is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	log  zerolog.Logger

	// write persists a collection; tests replace it to simulate disk failures.
	write func(path string, v interface{}) error
}

var _ book.Repository = (*Store)(nil)

// NewStore returns a Store persisting to the JSON file at path. The file is
// created on first access if it does not exist.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:  path,
		log:   logger.With().Str("component", "store").Str("path", path).Logger(),
		write: persistence.WriteJSON,
	}
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current collection. A missing data file is initialized to
// an empty collection under the exclusive lock.
func (s *Store) Load(ctx context.Context) (book.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	c, err := s.read()
	s.mu.RUnlock()
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, s.unavailable("load", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInit()
}

// Save replaces the whole collection on disk.
func (s *Store) Save(ctx context.Context, c book.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(c)
}

// View runs fn against a snapshot of the collection.
func (s *Store) View(ctx context.Context, fn func(book.Collection) error) error {
	c, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return fn(c)
}

// Mutate loads the collection, applies fn and saves the result while holding
// the exclusive lock. Nothing is written when fn fails.
func (s *Store) Mutate(ctx context.Context, fn func(book.Collection) (book.Collection, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loadOrInit()
	if err != nil {
		return err
	}
	next, err := fn(c)
	if err != nil {
		return err
	}
	return s.save(next)
}

// loadOrInit must be called with the exclusive lock held.
func (s *Store) loadOrInit() (book.Collection, error) {
	c, err := s.read()
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, s.unavailable("load", err)
	}

	empty := book.Collection{}
	if err := s.save(empty); err != nil {
		return nil, err
	}
	s.log.Info().Msg("Initialized empty book collection")
	return empty, nil
}

func (s *Store) read() (book.Collection, error) {
	var c book.Collection
	if err := persistence.ReadJSON(s.path, &c); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", persistence.ErrCorrupt)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// save must be called with the exclusive lock held.
func (s *Store) save(c book.Collection) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c == nil {
		c = book.Collection{}
	}
	if err := s.write(s.path, c); err != nil {
		s.log.Error().Err(err).Msg("Failed to save book collection")
		return s.unavailable("save", err)
	}
	return nil
}

func (s *Store) unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrStorageUnavailable, op, s.path, err)
}
