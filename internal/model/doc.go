// Package model defines the data structures shared by the catalog and the
// session controller.
//
// # Book
//
// A [Book] is identified by its title, compared case-insensitively. It is
// checked out when Borrower holds an account id.
//
// # Account and Role
//
// The library has a fixed, closed set of accounts returned by [Accounts].
// Each [Account] has a [Role]; the role decides which [Command] values its
// menu offers:
//
//	RoleAdmin:  add, remove, search, list, exit
//	RoleMember: borrow, checkin, search, exit
package model
