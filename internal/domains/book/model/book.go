package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Book represents a titled work authors sign contracts for.
// Identity is the pointer; two books with the same title are distinct.
type Book struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func newBook(title string) *Book {
	return &Book{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
	}
}

func (b *Book) String() string {
	if b == nil {
		return "<Book: nil>"
	}
	return fmt.Sprintf("<Book: %s>", b.Title)
}
