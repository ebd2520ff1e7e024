package model

import (
	authorModel "bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
)

// Registry is the ordered set of every contract signed since the last Reset.
// All queries scan it front to back, so results come back in signing order.
type Registry struct {
	contracts []*Contract
}

func NewRegistry() *Registry {
	return &Registry{contracts: []*Contract{}}
}

// Create validates and registers a new contract. Nothing is registered when
// validation fails.
func (r *Registry) Create(a *authorModel.Author, b *bookModel.Book, date string, royalties int) (*Contract, error) {
	c, err := newContract(a, b, date, royalties)
	if err != nil {
		return nil, err
	}
	r.contracts = append(r.contracts, c)
	return c, nil
}

// All returns a copy of the registered contracts
func (r *Registry) All() []*Contract {
	return r.filter(func(*Contract) bool { return true })
}

func (r *Registry) Len() int {
	return len(r.contracts)
}

// ByAuthor returns the contracts signed by a
func (r *Registry) ByAuthor(a *authorModel.Author) []*Contract {
	return r.filter(func(c *Contract) bool { return c.Author == a })
}

// ByBook returns the contracts covering b
func (r *Registry) ByBook(b *bookModel.Book) []*Contract {
	return r.filter(func(c *Contract) bool { return c.Book == b })
}

// ByDate returns the contracts whose date is exactly date
func (r *Registry) ByDate(date string) []*Contract {
	return r.filter(func(c *Contract) bool { return c.Date == date })
}

// Reset drops every contract. Author and book registries are separate and
// keep their entries.
func (r *Registry) Reset() {
	r.contracts = []*Contract{}
}

func (r *Registry) filter(keep func(*Contract) bool) []*Contract {
	out := []*Contract{}
	for _, c := range r.contracts {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
