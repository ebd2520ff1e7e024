package service

import (
	"fmt"

	authorModel "bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
	"bookstore-royalties/internal/domains/contract/model"

	"github.com/rs/zerolog/log"
)

type contractService struct {
	contracts *model.Registry
}

func NewContractService(contracts *model.Registry) ServiceInterface {
	return &contractService{contracts: contracts}
}

func (s *contractService) Create(a *authorModel.Author, b *bookModel.Book, date string, royalties int) (*model.Contract, error) {
	c, err := s.contracts.Create(a, b, date, royalties)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("contract rejected")
		return nil, fmt.Errorf("create contract: %w", err)
	}
	return c, nil
}

func (s *contractService) CreateFromValues(author, book, date, royalties any) (*model.Contract, error) {
	c, err := s.contracts.CreateFromValues(author, book, date, royalties)
	if err != nil {
		log.Warn().Err(err).Msg("contract rejected")
		return nil, fmt.Errorf("create contract: %w", err)
	}
	return c, nil
}

func (s *contractService) List() []*model.Contract {
	return s.contracts.All()
}

func (s *contractService) ContractsByDate(date string) []*model.Contract {
	return s.contracts.ByDate(date)
}

func (s *contractService) Reset() {
	n := s.contracts.Len()
	s.contracts.Reset()

	log.Info().Int("dropped", n).Msg("contract registry reset")
}
