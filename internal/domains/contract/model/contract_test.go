package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-royalties/internal/domains/contract/model"
)

func Test_Contract_Equal(t *testing.T) {
	f := newFixture()
	a := f.authors.Create("Le Guin")
	otherAuthor := f.authors.Create("Le Guin")
	b := f.books.Create("The Dispossessed")
	otherBook := f.books.Create("The Dispossessed")

	base, err := f.contracts.Create(a, b, "1974-03-01", 1500)
	require.NoError(t, err)

	tests := []struct {
		name  string
		build func() (*model.Contract, error)
		equal bool
	}{
		{
			name:  "same_fields",
			build: func() (*model.Contract, error) { return f.contracts.Create(a, b, "1974-03-01", 1500) },
			equal: true,
		},
		{
			name:  "different_author_same_name",
			build: func() (*model.Contract, error) { return f.contracts.Create(otherAuthor, b, "1974-03-01", 1500) },
		},
		{
			name:  "different_book_same_title",
			build: func() (*model.Contract, error) { return f.contracts.Create(a, otherBook, "1974-03-01", 1500) },
		},
		{
			name:  "different_date",
			build: func() (*model.Contract, error) { return f.contracts.Create(a, b, "1974-03-02", 1500) },
		},
		{
			name:  "different_royalties",
			build: func() (*model.Contract, error) { return f.contracts.Create(a, b, "1974-03-01", 1501) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other, err := tc.build()
			require.NoError(t, err)

			assert.Equal(t, tc.equal, base.Equal(other))
			assert.Equal(t, tc.equal, other.Equal(base))
		})
	}
}

func Test_Contract_EqualNil(t *testing.T) {
	f := newFixture()
	c, err := f.contracts.Create(f.authors.Create("Le Guin"), f.books.Create("The Dispossessed"), "1974-03-01", 1500)
	require.NoError(t, err)

	var nilContract *model.Contract
	assert.False(t, c.Equal(nil))
	assert.False(t, nilContract.Equal(c))
	assert.True(t, nilContract.Equal(nil))
}

func Test_Contract_String(t *testing.T) {
	f := newFixture()
	c, err := f.contracts.Create(f.authors.Create("Le Guin"), f.books.Create("The Dispossessed"), "1974-03-01", 1500)
	require.NoError(t, err)

	assert.Equal(t, "<Contract: Le Guin - The Dispossessed on 1974-03-01>", c.String())
}
