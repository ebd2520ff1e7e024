package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind shared by every construction failure
var ErrInvalidInput = errors.New("invalid contract input")

// ContractError describes why a contract could not be constructed
type ContractError struct {
	Code    string // e.g. "INVALID_AUTHOR"
	Message string
	Err     error
}

func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidAuthor = &ContractError{
		Code:    "INVALID_AUTHOR",
		Message: "Invalid author",
		Err:     ErrInvalidInput,
	}

	ErrInvalidBook = &ContractError{
		Code:    "INVALID_BOOK",
		Message: "Invalid book",
		Err:     ErrInvalidInput,
	}

	ErrInvalidDate = &ContractError{
		Code:    "INVALID_DATE",
		Message: "Date must be a string",
		Err:     ErrInvalidInput,
	}

	ErrInvalidRoyalties = &ContractError{
		Code:    "INVALID_ROYALTIES",
		Message: "Royalties must be an integer",
		Err:     ErrInvalidInput,
	}
)

// IsInvalidInput reports whether err came from a rejected construction
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
