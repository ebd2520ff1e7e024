package model

// Registry keeps every book created through it, in creation order.
type Registry struct {
	books []*Book
}

func NewRegistry() *Registry {
	return &Registry{books: []*Book{}}
}

// Create builds a new book and registers it
func (r *Registry) Create(title string) *Book {
	b := newBook(title)
	r.books = append(r.books, b)
	return b
}

// All returns a copy of the registered books
func (r *Registry) All() []*Book {
	out := make([]*Book, len(r.books))
	copy(out, r.books)
	return out
}

func (r *Registry) Len() int {
	return len(r.books)
}

// Reset forgets every registered book
func (r *Registry) Reset() {
	r.books = []*Book{}
}
