package model

import (
	"strconv"
	"strings"
)

// Role is the closed set of account kinds. Each role carries the commands
// its menu offers, in display order.
type Role int

const (
	RoleMember Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	}

	return "unknown"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Command is an action offered by a role menu.
type Command string

const (
	CommandAdd     Command = "add"
	CommandRemove  Command = "remove"
	CommandSearch  Command = "search"
	CommandList    Command = "list"
	CommandBorrow  Command = "borrow"
	CommandCheckIn Command = "checkin"
	CommandExit    Command = "exit"
)

var (
	adminCommands  = []Command{CommandAdd, CommandRemove, CommandSearch, CommandList, CommandExit}
	memberCommands = []Command{CommandBorrow, CommandCheckIn, CommandSearch, CommandExit}
)

// Commands returns the role's menu in display order.
func (r Role) Commands() []Command {
	var src []Command

	switch r {
	case RoleAdmin:
		src = adminCommands
	case RoleMember:
		src = memberCommands
	}

	out := make([]Command, len(src))
	copy(out, src)

	return out
}

// Allows reports whether cmd belongs to the role's command set.
func (r Role) Allows(cmd Command) bool {
	for _, c := range r.Commands() {
		if c == cmd {
			return true
		}
	}

	return false
}

// Lookup resolves menu input to a command of the role. Input is either the
// 1-based position in the menu or the command name, case-insensitive.
func (r Role) Lookup(input string) (Command, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	commands := r.Commands()

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(commands) {
			return commands[n-1], true
		}

		return "", false
	}

	for _, c := range commands {
		if string(c) == input {
			return c, true
		}
	}

	return "", false
}

// Account is one of the fixed library users. There are no credentials;
// accounts are picked from a menu.
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsAdmin reports whether the account has the admin role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

var (
	Librarian = Account{ID: "librarian", DisplayName: "Librarian (Admin)", Role: RoleAdmin}
	Bob       = Account{ID: "bob", DisplayName: "Bob", Role: RoleMember}
	Steve     = Account{ID: "steve", DisplayName: "Steve", Role: RoleMember}
)

// Accounts returns the fixed account set in menu order.
func Accounts() []Account {
	return []Account{Librarian, Bob, Steve}
}

// FindAccount resolves account menu input: the 1-based position in accounts,
// the account id, or the display name, all case-insensitive.
func FindAccount(accounts []Account, input string) (Account, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Account{}, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(accounts) {
			return accounts[n-1], true
		}

		return Account{}, false
	}

	for _, a := range accounts {
		if strings.EqualFold(a.ID, input) || strings.EqualFold(a.DisplayName, input) {
			return a, true
		}
	}

	return Account{}, false
}
