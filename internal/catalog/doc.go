// Package catalog holds the in-memory library catalog.
//
// The [Catalog] keeps at most [MaxBooks] titles in insertion order. Titles
// are unique and every comparison ignores case. Accounts may hold at most
// [MaxBorrowPerUser] books at once, and searches need at least
// [MinSearchTerm] characters.
//
// Every failure is reported as one of the package's sentinel errors (or a
// [CheckedOutError], which wraps [ErrAlreadyCheckedOut]) and leaves the
// catalog unchanged.
package catalog
