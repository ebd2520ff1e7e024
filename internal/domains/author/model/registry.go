package model

// Registry keeps every author created through it, in creation order.
type Registry struct {
	authors []*Author
}

// NewRegistry creates an empty author registry
func NewRegistry() *Registry {
	return &Registry{authors: []*Author{}}
}

// Create builds a new author and registers it
func (r *Registry) Create(name string) *Author {
	a := newAuthor(name)
	r.authors = append(r.authors, a)
	return a
}

// All returns a copy of the registered authors
func (r *Registry) All() []*Author {
	out := make([]*Author, len(r.authors))
	copy(out, r.authors)
	return out
}

func (r *Registry) Len() int {
	return len(r.authors)
}

// Reset forgets every registered author. Contracts that point at them are
// not touched.
func (r *Registry) Reset() {
	r.authors = []*Author{}
}
