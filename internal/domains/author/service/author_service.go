package service

import (
	"fmt"

	"bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
	contractModel "bookstore-royalties/internal/domains/contract/model"

	"github.com/rs/zerolog/log"
)

// authorService implements ServiceInterface
type authorService struct {
	authors   *model.Registry
	contracts *contractModel.Registry
}

// NewAuthorService creates a new author service over the given registries
func NewAuthorService(authors *model.Registry, contracts *contractModel.Registry) ServiceInterface {
	return &authorService{
		authors:   authors,
		contracts: contracts,
	}
}

func (s *authorService) Create(name string) *model.Author {
	a := s.authors.Create(name)

	log.Debug().
		Str("author_id", a.ID.String()).
		Str("name", a.Name).
		Msg("author created")

	return a
}

func (s *authorService) List() []*model.Author {
	return s.authors.All()
}

func (s *authorService) Contracts(a *model.Author) []*contractModel.Contract {
	return s.contracts.ByAuthor(a)
}

func (s *authorService) Books(a *model.Author) []*bookModel.Book {
	contracts := s.Contracts(a)
	books := make([]*bookModel.Book, 0, len(contracts))
	for _, c := range contracts {
		books = append(books, c.Book)
	}
	return books
}

func (s *authorService) SignContract(a *model.Author, b *bookModel.Book, date string, royalties int) (*contractModel.Contract, error) {
	c, err := s.contracts.Create(a, b, date, royalties)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("contract rejected")
		return nil, fmt.Errorf("sign contract: %w", err)
	}

	log.Debug().
		Str("contract_id", c.ID.String()).
		Str("author", a.Name).
		Str("book", b.Title).
		Str("date", date).
		Int("royalties", royalties).
		Msg("contract signed")

	return c, nil
}

func (s *authorService) TotalRoyalties(a *model.Author) int {
	total := 0
	for _, c := range s.Contracts(a) {
		total += c.Royalties
	}
	return total
}
