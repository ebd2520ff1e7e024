package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "bookstore-royalties/internal/domains/author/model"
	"bookstore-royalties/internal/domains/author/service"
	bookModel "bookstore-royalties/internal/domains/book/model"
	contractModel "bookstore-royalties/internal/domains/contract/model"
)

func newService() (service.ServiceInterface, *bookModel.Registry, *contractModel.Registry) {
	contracts := contractModel.NewRegistry()
	return service.NewAuthorService(authorModel.NewRegistry(), contracts), bookModel.NewRegistry(), contracts
}

func Test_AuthorService_SignContract(t *testing.T) {
	s, books, contracts := newService()
	a := s.Create("Le Guin")
	b := books.Create("The Dispossessed")

	c, err := s.SignContract(a, b, "1974-03-01", 1500)

	require.NoError(t, err)
	assert.Same(t, a, c.Author)
	assert.Equal(t, []*contractModel.Contract{c}, contracts.All())
	assert.Equal(t, []*contractModel.Contract{c}, s.Contracts(a))
	assert.Equal(t, []*bookModel.Book{b}, s.Books(a))
	assert.Equal(t, 1500, s.TotalRoyalties(a))
}

func Test_AuthorService_SignContractPropagatesInvalidBook(t *testing.T) {
	s, _, contracts := newService()
	a := s.Create("Le Guin")

	c, err := s.SignContract(a, nil, "1974-03-01", 1500)

	assert.Nil(t, c)
	assert.ErrorIs(t, err, contractModel.ErrInvalidBook)
	assert.ErrorIs(t, err, contractModel.ErrInvalidInput)
	assert.Equal(t, 0, contracts.Len())
	assert.Empty(t, s.Contracts(a))
}

func Test_AuthorService_BooksKeepDuplicates(t *testing.T) {
	s, books, _ := newService()
	a := s.Create("Le Guin")
	dispossessed := books.Create("The Dispossessed")
	earthsea := books.Create("A Wizard of Earthsea")

	for _, b := range []*bookModel.Book{dispossessed, earthsea, dispossessed} {
		_, err := s.SignContract(a, b, "2024-01-01", 1)
		require.NoError(t, err)
	}

	assert.Equal(t, []*bookModel.Book{dispossessed, earthsea, dispossessed}, s.Books(a))
}

func Test_AuthorService_TotalRoyalties(t *testing.T) {
	s, books, _ := newService()
	leGuin := s.Create("Le Guin")
	butler := s.Create("Butler")
	idle := s.Create("Le Guin")
	b := books.Create("Anthology")

	for _, tc := range []struct {
		author    *authorModel.Author
		royalties int
	}{
		{leGuin, 1500},
		{butler, 700},
		{leGuin, 250},
		{leGuin, -50},
	} {
		_, err := s.SignContract(tc.author, b, "2024-01-01", tc.royalties)
		require.NoError(t, err)
	}

	assert.Equal(t, 1700, s.TotalRoyalties(leGuin))
	assert.Equal(t, 700, s.TotalRoyalties(butler))
	assert.Equal(t, 0, s.TotalRoyalties(idle))
	assert.Empty(t, s.Books(idle))
}

func Test_AuthorService_List(t *testing.T) {
	s, _, _ := newService()
	a := s.Create("Le Guin")
	b := s.Create("Butler")

	assert.Equal(t, []*authorModel.Author{a, b}, s.List())
}
