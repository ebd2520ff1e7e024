package service

import (
	"bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
	contractModel "bookstore-royalties/internal/domains/contract/model"
)

// ServiceInterface exposes authors and the queries derived from their contracts
type ServiceInterface interface {
	Create(name string) *model.Author
	List() []*model.Author

	// Contracts returns a's contracts in signing order
	Contracts(a *model.Author) []*contractModel.Contract
	// Books maps Contracts(a) to books; a book signed twice shows up twice
	Books(a *model.Author) []*bookModel.Book
	// SignContract registers a new contract with a as the author.
	// Errors: contract model ErrInvalidBook (wrapping ErrInvalidInput)
	SignContract(a *model.Author, b *bookModel.Book, date string, royalties int) (*contractModel.Contract, error)
	// TotalRoyalties sums royalties over Contracts(a), 0 when there are none
	TotalRoyalties(a *model.Author) int
}
