package book

import "fmt"

// NextID returns the identifier the next inserted book receives: 1 for an
// empty collection, otherwise the highest id plus one. Uniqueness only holds
// when inserts are serialized.
func NextID(c Collection) int {
	next := 1
	for _, b := range c {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}

// FilterAvailable returns the available books in their original order.
func FilterAvailable(c Collection) Collection {
	result := make(Collection, 0, len(c))
	for _, b := range c {
		if b.Available {
			result = append(result, b)
		}
	}
	return result
}

// FindByID returns the book with the given id.
func FindByID(c Collection, id int) (Book, bool) {
	if i := indexOf(c, id); i >= 0 {
		return c[i], true
	}
	return Book{}, false
}

// Insert validates the draft, assigns it the next id and appends it to a copy
// of the collection.
func Insert(c Collection, d Draft) (Collection, Book, error) {
	if err := d.Validate(); err != nil {
		return nil, Book{}, invalid(err)
	}

	created := Book{
		ID:        NextID(c),
		Title:     d.Title,
		Author:    d.Author,
		Available: *d.Available,
	}

	result := make(Collection, len(c), len(c)+1)
	copy(result, c)
	return append(result, created), created, nil
}

// Update overlays the fields present in the patch onto the book with the given
// id. An empty patch succeeds and returns the book unchanged.
func Update(c Collection, id int, p Patch) (Collection, Book, error) {
	i := indexOf(c, id)
	if i < 0 {
		return nil, Book{}, notFound(id)
	}
	if err := p.Validate(); err != nil {
		return nil, Book{}, invalid(err)
	}

	updated := c[i]
	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Author != nil {
		updated.Author = *p.Author
	}
	if p.Available != nil {
		updated.Available = *p.Available
	}

	result := make(Collection, len(c))
	copy(result, c)
	result[i] = updated
	return result, updated, nil
}

// Remove returns a copy of the collection without the book with the given id.
func Remove(c Collection, id int) (Collection, error) {
	i := indexOf(c, id)
	if i < 0 {
		return nil, notFound(id)
	}

	result := make(Collection, 0, len(c)-1)
	result = append(result, c[:i]...)
	return append(result, c[i+1:]...), nil
}

// Validate checks that every id is positive and unique.
func (c Collection) Validate() error {
	seen := make(map[int]struct{}, len(c))
	for pos, b := range c {
		if b.ID <= 0 {
			return fmt.Errorf("%w: record %d has non-positive id %d", ErrInvalidCollection, pos, b.ID)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidCollection, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func indexOf(c Collection, id int) int {
	for i, b := range c {
		if b.ID == id {
			return i
		}
	}
	return -1
}
