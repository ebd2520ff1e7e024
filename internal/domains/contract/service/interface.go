package service

import (
	authorModel "bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
	"bookstore-royalties/internal/domains/contract/model"
)

type ServiceInterface interface {
	// Create registers a contract directly, without going through an author.
	// Errors: model.ErrInvalidAuthor, model.ErrInvalidBook
	Create(a *authorModel.Author, b *bookModel.Book, date string, royalties int) (*model.Contract, error)

	// CreateFromValues is the entry point for untyped input. Each value is
	// shape-checked in order before anything is registered.
	// Errors: model.ErrInvalidAuthor, model.ErrInvalidBook,
	// model.ErrInvalidDate, model.ErrInvalidRoyalties
	CreateFromValues(author, book, date, royalties any) (*model.Contract, error)

	List() []*model.Contract
	ContractsByDate(date string) []*model.Contract

	// Reset empties the contract registry. Authors and books are kept.
	Reset()
}
