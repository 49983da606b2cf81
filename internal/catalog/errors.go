package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded    = errors.New("catalog is full")
	ErrDuplicateTitle      = errors.New("a book with that title already exists")
	ErrNotFound            = errors.New("book not found")
	ErrCheckedOut          = errors.New("book is checked out")
	ErrNotCheckedOut       = errors.New("book is not checked out")
	ErrNotOwner            = errors.New("book was borrowed by another user")
	ErrAlreadyCheckedOut   = errors.New("book already checked out")
	ErrBorrowLimitExceeded = errors.New("borrow limit reached")
	ErrTermTooShort        = errors.New("search term too short")
	ErrCatalogEmpty        = errors.New("catalog is empty")
)

// CheckedOutError is returned by Borrow when another account holds the book.
// It matches ErrAlreadyCheckedOut with errors.Is.
type CheckedOutError struct {
	Title    string
	Borrower string
}

func (e *CheckedOutError) Error() string {
	return fmt.Sprintf("%q already checked out by %s", e.Title, e.Borrower)
}

func (e *CheckedOutError) Unwrap() error {
	return ErrAlreadyCheckedOut
}
