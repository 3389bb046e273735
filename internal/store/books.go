package store

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/bookshelf/internal/book"
)

// List returns every book in insertion order.
func (s *Store) List(ctx context.Context) (book.Collection, error) {
	return s.Load(ctx)
}

// Get returns the book with the given id.
func (s *Store) Get(ctx context.Context, id int) (book.Book, error) {
	var found book.Book
	err := s.View(ctx, func(c book.Collection) error {
		b, ok := book.FindByID(c, id)
		if !ok {
			return fmt.Errorf("%w: id %d", book.ErrNotFound, id)
		}
		found = b
		return nil
	})
	return found, err
}

// ListAvailable returns the books currently marked available.
func (s *Store) ListAvailable(ctx context.Context) (book.Collection, error) {
	var available book.Collection
	err := s.View(ctx, func(c book.Collection) error {
		available = book.FilterAvailable(c)
		return nil
	})
	return available, err
}

// Create stores a new book and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, draft book.Draft) (book.Book, error) {
	var created book.Book
	err := s.Mutate(ctx, func(c book.Collection) (book.Collection, error) {
		next, b, err := book.Insert(c, draft)
		created = b
		return next, err
	})
	if err != nil {
		return book.Book{}, err
	}

	s.log.Debug().Int("id", created.ID).Msg("Book created")
	return created, nil
}

// Update applies the patch to the book with the given id and returns the new
// value. An empty patch only looks the book up; the file is not rewritten.
func (s *Store) Update(ctx context.Context, id int, patch book.Patch) (book.Book, error) {
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	var updated book.Book
	err := s.Mutate(ctx, func(c book.Collection) (book.Collection, error) {
		next, b, err := book.Update(c, id, patch)
		updated = b
		return next, err
	})
	if err != nil {
		return book.Book{}, err
	}

	s.log.Debug().Int("id", id).Msg("Book updated")
	return updated, nil
}

// Delete removes the book with the given id.
func (s *Store) Delete(ctx context.Context, id int) error {
	err := s.Mutate(ctx, func(c book.Collection) (book.Collection, error) {
		return book.Remove(c, id)
	})
	if err != nil {
		return err
	}

	s.log.Debug().Int("id", id).Msg("Book deleted")
	return nil
}
