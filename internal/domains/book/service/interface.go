package service

import (
	authorModel "bookstore-royalties/internal/domains/author/model"
	"bookstore-royalties/internal/domains/book/model"
	contractModel "bookstore-royalties/internal/domains/contract/model"
)

type ServiceInterface interface {
	Create(title string) *model.Book
	List() []*model.Book

	// Contracts returns the contracts covering b in signing order
	Contracts(b *model.Book) []*contractModel.Contract
	// Authors maps Contracts(b) to authors, duplicates kept
	Authors(b *model.Book) []*authorModel.Author
}
