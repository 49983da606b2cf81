package session

import (
	"errors"
	"fmt"

	"github.com/inovacc/libris/internal/catalog"
)

var (
	ErrEmptyInput    = errors.New("no input entered")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Message maps a user-facing error to the text shown on the console. The
// second result is false for errors that are not part of the user-facing
// taxonomy, which the session treats as fatal.
func Message(err error) (string, bool) {
	var coErr *catalog.CheckedOutError
	if errors.As(err, &coErr) {
		return fmt.Sprintf("Book already checked out by %s.", coErr.Borrower), true
	}

	switch {
	case errors.Is(err, catalog.ErrCapacityExceeded):
		return "The library is full. No more books can be added.", true
	case errors.Is(err, catalog.ErrDuplicateTitle):
		return "A book with that title already exists in the catalog.", true
	case errors.Is(err, catalog.ErrNotFound):
		return "Book not found.", true
	case errors.Is(err, catalog.ErrCheckedOut):
		return "Cannot remove a book that is currently checked out.", true
	case errors.Is(err, catalog.ErrNotCheckedOut):
		return "That book is not checked out.", true
	case errors.Is(err, catalog.ErrNotOwner):
		return "You cannot check in a book you did not borrow.", true
	case errors.Is(err, catalog.ErrAlreadyCheckedOut):
		return "Book already checked out.", true
	case errors.Is(err, catalog.ErrBorrowLimitExceeded):
		return fmt.Sprintf("Borrow limit reached. You may borrow up to %d books at a time.", catalog.MaxBorrowPerUser), true
	case errors.Is(err, catalog.ErrTermTooShort):
		return fmt.Sprintf("Please enter at least %d characters to search.", catalog.MinSearchTerm), true
	case errors.Is(err, catalog.ErrCatalogEmpty):
		return "The library is empty. There are no books to work with.", true
	case errors.Is(err, ErrEmptyInput):
		return "Nothing entered. Operation cancelled.", true
	case errors.Is(err, ErrInvalidChoice):
		return "Invalid choice. Please try again.", true
	}

	return "", false
}
