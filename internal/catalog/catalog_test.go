package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/inovacc/libris/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(books []model.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.String()
	}

	return out
}

func TestCatalog_AddCapacity(t *testing.T) {
	c := New()

	for i := range MaxBooks {
		_, err := c.Add(fmt.Sprintf("Book %d", i+1))
		require.NoError(t, err)
	}

	require.True(t, c.Full())

	_, err := c.Add("One Too Many")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, MaxBooks, c.Len())

	_, err = c.Find("One Too Many")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_AddDuplicateIgnoresCase(t *testing.T) {
	c := New()

	_, err := c.Add("Dune")
	require.NoError(t, err)

	_, err = c.Add("dUNE")
	require.ErrorIs(t, err, ErrDuplicateTitle)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_RemoveCheckedOut(t *testing.T) {
	c := New()

	_, err := c.Add("Dune")
	require.NoError(t, err)

	_, err = c.Borrow("Dune", model.Bob)
	require.NoError(t, err)

	_, err = c.Remove("DUNE")
	require.ErrorIs(t, err, ErrCheckedOut)

	book, err := c.Find("Dune")
	require.NoError(t, err)
	assert.Equal(t, "bob", book.Borrower)
}

func TestCatalog_RemoveNotFound(t *testing.T) {
	c := New()

	_, err := c.Remove("Ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_RemoveKeepsOrder(t *testing.T) {
	c := New()

	for _, title := range []string{"A1", "B2", "C3"} {
		_, err := c.Add(title)
		require.NoError(t, err)
	}

	removed, err := c.Remove("b2")
	require.NoError(t, err)
	assert.Equal(t, "B2", removed.Title)
	assert.Equal(t, []string{"A1 (available)", "C3 (available)"}, titles(c.List()))
}

func TestCatalog_Search(t *testing.T) {
	c := New()

	for _, title := range []string{"The Hobbit", "Dune", "Hobbit Houses"} {
		_, err := c.Add(title)
		require.NoError(t, err)
	}

	_, err := c.Borrow("Dune", model.Steve)
	require.NoError(t, err)

	tests := []struct {
		name    string
		term    string
		want    []string
		wantErr error
	}{
		{"too short", "ab", nil, ErrTermTooShort},
		{"empty", "", nil, ErrTermTooShort},
		{"substring ignores case", "HOB", []string{"The Hobbit (available)", "Hobbit Houses (available)"}, nil},
		{"annotated", "dun", []string{"Dune (checked out by steve)"}, nil},
		{"no match", "zzz", []string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Search(tt.term)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestCatalog_SearchShortTermOnEmptyCatalog(t *testing.T) {
	_, err := New().Search("ab")
	assert.ErrorIs(t, err, ErrTermTooShort)
}

func TestCatalog_ListIsCopy(t *testing.T) {
	c := New()
	assert.Empty(t, c.List())

	_, err := c.Add("Dune")
	require.NoError(t, err)

	books := c.List()
	books[0].Borrower = "mallory"

	book, err := c.Find("dune")
	require.NoError(t, err)
	assert.False(t, book.CheckedOut())
}

func TestCatalog_BorrowLimit(t *testing.T) {
	c := New()

	for _, title := range []string{"One", "Two", "Three", "Four"} {
		_, err := c.Add(title)
		require.NoError(t, err)
	}

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := c.Borrow(title, model.Bob)
		require.NoError(t, err)
	}

	_, err := c.Borrow("Four", model.Bob)
	require.ErrorIs(t, err, ErrBorrowLimitExceeded)
	assert.Equal(t, MaxBorrowPerUser, c.BorrowedCount("bob"))

	// the limit is per account
	_, err = c.Borrow("Four", model.Steve)
	require.NoError(t, err)
}

func TestCatalog_BorrowAlreadyCheckedOut(t *testing.T) {
	c := New()

	_, err := c.Add("Dune")
	require.NoError(t, err)

	_, err = c.Borrow("Dune", model.Bob)
	require.NoError(t, err)

	_, err = c.Borrow("dune", model.Steve)
	require.ErrorIs(t, err, ErrAlreadyCheckedOut)

	var coErr *CheckedOutError
	require.True(t, errors.As(err, &coErr))
	assert.Equal(t, "bob", coErr.Borrower)
	assert.Equal(t, "Dune", coErr.Title)

	_, err = c.Borrow("Nope", model.Steve)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_CheckIn(t *testing.T) {
	c := New()

	_, err := c.Add("X")
	require.NoError(t, err)

	_, err = c.CheckIn("X", model.Bob)
	require.ErrorIs(t, err, ErrNotCheckedOut)

	_, err = c.Borrow("X", model.Steve)
	require.NoError(t, err)

	_, err = c.CheckIn("X", model.Bob)
	require.ErrorIs(t, err, ErrNotOwner)

	book, err := c.Find("X")
	require.NoError(t, err)
	assert.Equal(t, "steve", book.Borrower)

	// admin may check in any book
	book, err = c.CheckIn("x", model.Librarian)
	require.NoError(t, err)
	assert.False(t, book.CheckedOut())

	_, err = c.CheckIn("Y", model.Librarian)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_RoundTrip(t *testing.T) {
	c := New()

	_, err := c.Add("T")
	require.NoError(t, err)

	_, err = c.Borrow("T", model.Bob)
	require.NoError(t, err)

	_, err = c.CheckIn("T", model.Bob)
	require.NoError(t, err)

	_, err = c.Remove("T")
	require.NoError(t, err)

	assert.True(t, c.Empty())
}

func TestCatalog_Scenario(t *testing.T) {
	c := New()

	_, err := c.Add("Dune")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune (available)"}, titles(c.List()))

	_, err = c.Borrow("Dune", model.Bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune (checked out by bob)"}, titles(c.List()))

	_, err = c.Borrow("Dune", model.Steve)
	require.ErrorIs(t, err, ErrAlreadyCheckedOut)

	_, err = c.CheckIn("Dune", model.Steve)
	require.ErrorIs(t, err, ErrNotOwner)

	_, err = c.CheckIn("Dune", model.Bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune (available)"}, titles(c.List()))
}

func TestCheckedOutError(t *testing.T) {
	err := &CheckedOutError{Title: "Dune", Borrower: "bob"}

	expected := `"Dune" already checked out by bob`
	if err.Error() != expected {
		t.Errorf("CheckedOutError.Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Error("errors.Is should match ErrAlreadyCheckedOut")
	}
}
