// Package book defines the book record, the inputs used to create and patch
// records, and the pure operations that compute a new collection from an
// existing one.
package book

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Book is a single catalog record.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// Collection is the full, insertion-ordered set of books. It is the unit of
// persistence.
type Collection []Book

// Draft carries the client-supplied fields of a book that is about to be
// created. Available is a pointer so that a missing value can be told apart
// from false.
type Draft struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available *bool  `json:"available"`
}

// Validate checks the required fields of a draft.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&d.Author,
			validation.Required.Error("author is required"),
		),
		validation.Field(&d.Available,
			validation.NotNil.Error("available is required"),
		),
	)
}

// Patch lists the fields of an update. Nil fields are left untouched.
// The identifier is deliberately absent: it cannot be changed once assigned.
type Patch struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Available *bool   `json:"available"`
}

// Validate checks the fields present in the patch. A present title or author
// must not be empty.
func (p Patch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&p.Author, validation.NilOrNotEmpty.Error("author cannot be empty")),
	)
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Available == nil
}

// Repository describes the operations offered over the shared collection.
type Repository interface {
	List(ctx context.Context) (Collection, error)
	Get(ctx context.Context, id int) (Book, error)
	ListAvailable(ctx context.Context) (Collection, error)
	Create(ctx context.Context, draft Draft) (Book, error)
	Update(ctx context.Context, id int, patch Patch) (Book, error)
	Delete(ctx context.Context, id int) error
}
