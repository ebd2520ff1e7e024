package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Author is a named party that signs contracts.
// Two authors with the same name are different authors: identity is the
// pointer, ID is only there to tell them apart in logs.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newAuthor(name string) *Author {
	return &Author{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// String renders the author for diagnostics
func (a *Author) String() string {
	if a == nil {
		return "<Author: nil>"
	}
	return fmt.Sprintf("<Author: %s>", a.Name)
}
