package model

import (
	"reflect"

	authorModel "bookstore-royalties/internal/domains/author/model"
	bookModel "bookstore-royalties/internal/domains/book/model"
)

// CreateFromValues registers a contract from untyped input, checking each
// value's shape in order: author, book, date, royalties.
func (r *Registry) CreateFromValues(author, book, date, royalties any) (*Contract, error) {
	a, ok := author.(*authorModel.Author)
	if !ok || a == nil {
		return nil, ErrInvalidAuthor
	}
	b, ok := book.(*bookModel.Book)
	if !ok || b == nil {
		return nil, ErrInvalidBook
	}
	d, ok := date.(string)
	if !ok {
		return nil, ErrInvalidDate
	}
	n, ok := toInt(royalties)
	if !ok {
		return nil, ErrInvalidRoyalties
	}
	return r.Create(a, b, d, n)
}

// toInt accepts any Go integer kind that fits in an int. Bools and floats
// are rejected even when they hold a whole number.
func toInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > uint64(^uint(0)>>1) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
