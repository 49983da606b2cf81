package catalog

import (
	"strings"

	"github.com/inovacc/libris/internal/model"
)

const (
	// MaxBooks bounds the number of titles the catalog holds.
	MaxBooks = 5

	// MaxBorrowPerUser bounds the books one account may hold at a time.
	MaxBorrowPerUser = 3

	// MinSearchTerm is the shortest accepted search term, in characters.
	MinSearchTerm = 3
)

// Catalog is the ordered, capacity-bounded collection of books. Failed
// operations leave it untouched. It is not safe for concurrent use.
type Catalog struct {
	books []model.Book
}

func New() *Catalog {
	return &Catalog{books: make([]model.Book, 0, MaxBooks)}
}

func (c *Catalog) Len() int {
	return len(c.books)
}

func (c *Catalog) Empty() bool {
	return len(c.books) == 0
}

func (c *Catalog) Full() bool {
	return len(c.books) >= MaxBooks
}

func (c *Catalog) indexOf(title string) int {
	for i := range c.books {
		if c.books[i].HasTitle(title) {
			return i
		}
	}

	return -1
}

// Add appends an available book with the given title.
func (c *Catalog) Add(title string) (model.Book, error) {
	if c.Full() {
		return model.Book{}, ErrCapacityExceeded
	}

	if c.indexOf(title) >= 0 {
		return model.Book{}, ErrDuplicateTitle
	}

	book := model.Book{Title: title}
	c.books = append(c.books, book)

	return book, nil
}

// Remove deletes the book matching title. Checked-out books cannot be removed.
func (c *Catalog) Remove(title string) (model.Book, error) {
	idx := c.indexOf(title)
	if idx < 0 {
		return model.Book{}, ErrNotFound
	}

	book := c.books[idx]
	if book.CheckedOut() {
		return model.Book{}, ErrCheckedOut
	}

	c.books = append(c.books[:idx], c.books[idx+1:]...)

	return book, nil
}

// Find returns the book whose title matches exactly, ignoring case.
func (c *Catalog) Find(title string) (model.Book, error) {
	idx := c.indexOf(title)
	if idx < 0 {
		return model.Book{}, ErrNotFound
	}

	return c.books[idx], nil
}

// Search returns, in catalog order, every book whose title contains term
// ignoring case. A result with no matches is not an error.
func (c *Catalog) Search(term string) ([]model.Book, error) {
	if len([]rune(term)) < MinSearchTerm {
		return nil, ErrTermTooShort
	}

	needle := strings.ToLower(term)

	var matches []model.Book

	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matches = append(matches, b)
		}
	}

	return matches, nil
}

// List returns a copy of all books in insertion order.
func (c *Catalog) List() []model.Book {
	out := make([]model.Book, len(c.books))
	copy(out, c.books)

	return out
}

// BorrowedCount returns how many books the account currently holds.
func (c *Catalog) BorrowedCount(accountID string) int {
	n := 0

	for _, b := range c.books {
		if b.BorrowedBy(accountID) {
			n++
		}
	}

	return n
}

// Borrow checks the book out to the account.
func (c *Catalog) Borrow(title string, acct model.Account) (model.Book, error) {
	idx := c.indexOf(title)
	if idx < 0 {
		return model.Book{}, ErrNotFound
	}

	book := c.books[idx]
	if book.CheckedOut() {
		return model.Book{}, &CheckedOutError{Title: book.Title, Borrower: book.Borrower}
	}

	if c.BorrowedCount(acct.ID) >= MaxBorrowPerUser {
		return model.Book{}, ErrBorrowLimitExceeded
	}

	c.books[idx].Borrower = acct.ID

	return c.books[idx], nil
}

// CheckIn returns a checked-out book to the shelf. Only the borrower or an
// admin may check a book in.
func (c *Catalog) CheckIn(title string, acct model.Account) (model.Book, error) {
	idx := c.indexOf(title)
	if idx < 0 {
		return model.Book{}, ErrNotFound
	}

	book := c.books[idx]
	if !book.CheckedOut() {
		return model.Book{}, ErrNotCheckedOut
	}

	if !acct.IsAdmin() && !book.BorrowedBy(acct.ID) {
		return model.Book{}, ErrNotOwner
	}

	c.books[idx].Borrower = ""

	return c.books[idx], nil
}
