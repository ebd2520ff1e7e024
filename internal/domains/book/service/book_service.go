package service

import (
	authorModel "bookstore-royalties/internal/domains/author/model"
	"bookstore-royalties/internal/domains/book/model"
	contractModel "bookstore-royalties/internal/domains/contract/model"

	"github.com/rs/zerolog/log"
)

type bookService struct {
	books     *model.Registry
	contracts *contractModel.Registry
}

func NewBookService(books *model.Registry, contracts *contractModel.Registry) ServiceInterface {
	return &bookService{
		books:     books,
		contracts: contracts,
	}
}

func (s *bookService) Create(title string) *model.Book {
	b := s.books.Create(title)

	log.Debug().
		Str("book_id", b.ID.String()).
		Str("title", b.Title).
		Msg("book created")

	return b
}

func (s *bookService) List() []*model.Book {
	return s.books.All()
}

func (s *bookService) Contracts(b *model.Book) []*contractModel.Contract {
	return s.contracts.ByBook(b)
}

func (s *bookService) Authors(b *model.Book) []*authorModel.Author {
	contracts := s.Contracts(b)
	authors := make([]*authorModel.Author, 0, len(contracts))
	for _, c := range contracts {
		authors = append(authors, c.Author)
	}
	return authors
}
