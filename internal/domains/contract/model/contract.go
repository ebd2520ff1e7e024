package model

import (
	"fmt"

	authorModel "bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Contract binds one author to one book with a signing date and royalties.
// It references its author and book but does not own them.
type Contract struct {
	ID        uuid.UUID           `json:"id"`
	Author    *authorModel.Author `json:"author"`
	Book      *bookModel.Book     `json:"book"`
	Date      string              `json:"date"` // caller-defined format, never parsed
	Royalties int                 `json:"royalties"`
}

// newContract validates the inputs in order and stops at the first failure.
// Date and royalties are already typed, so only the references are checked here.
func newContract(a *authorModel.Author, b *bookModel.Book, date string, royalties int) (*Contract, error) {
	if err := validation.Validate(a, validation.NotNil); err != nil {
		return nil, ErrInvalidAuthor
	}
	if err := validation.Validate(b, validation.NotNil); err != nil {
		return nil, ErrInvalidBook
	}

	return &Contract{
		ID:        uuid.New(),
		Author:    a,
		Book:      b,
		Date:      date,
		Royalties: royalties,
	}, nil
}

// Equal compares the four contract attributes. Author and book compare by
// reference; ID is ignored.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Author == other.Author &&
		c.Book == other.Book &&
		c.Date == other.Date &&
		c.Royalties == other.Royalties
}

// String is for diagnostics only, not a stable format
func (c *Contract) String() string {
	if c == nil {
		return "<Contract: nil>"
	}
	return fmt.Sprintf("<Contract: %s - %s on %s>", c.Author.Name, c.Book.Title, c.Date)
}
