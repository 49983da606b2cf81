package model

import (
	"fmt"
	"strings"
)

type Book struct {
	// Title is unique within a catalog, compared case-insensitively
	Title string `json:"title"`

	// Borrower is the account id currently holding the book, empty when on the shelf
	Borrower string `json:"borrower,omitempty"`
}

// CheckedOut reports whether the book currently has a borrower.
func (b Book) CheckedOut() bool {
	return b.Borrower != ""
}

// HasTitle compares the given title with the book's title ignoring case.
func (b Book) HasTitle(title string) bool {
	return strings.EqualFold(b.Title, title)
}

// BorrowedBy compares the given account id with the borrower ignoring case.
func (b Book) BorrowedBy(accountID string) bool {
	return b.CheckedOut() && strings.EqualFold(b.Borrower, accountID)
}

// Status is the availability label shown in search results.
func (b Book) Status() string {
	if b.CheckedOut() {
		return fmt.Sprintf("Checked out by %s", b.Borrower)
	}

	return "Available"
}

// String is the catalog listing form of the book.
func (b Book) String() string {
	if b.CheckedOut() {
		return fmt.Sprintf("%s (checked out by %s)", b.Title, b.Borrower)
	}

	return b.Title + " (available)"
}
