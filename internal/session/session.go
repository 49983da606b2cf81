package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/inovacc/libris/internal/application"
	"github.com/inovacc/libris/internal/cli"
	"github.com/inovacc/libris/internal/model"
)

// State is a step of the console dialogue.
type State int

const (
	StateSelectingAccount State = iota
	StateInMenu
	StateConfirmingExit
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateSelectingAccount:
		return "selecting-account"
	case StateInMenu:
		return "in-menu"
	case StateConfirmingExit:
		return "confirming-exit"
	case StateTerminated:
		return "terminated"
	}

	return "unknown"
}

// AccountPicker chooses the active account without going through the
// line prompt, e.g. an interactive terminal list.
type AccountPicker interface {
	Pick(ctx context.Context) (model.Account, error)
}

type Option func(*Controller)

// WithPicker replaces the numbered account prompt with p.
func WithPicker(p AccountPicker) Option {
	return func(c *Controller) {
		c.picker = p
	}
}

// Controller drives the console dialogue over one App. It owns the
// active account and routes menu commands to the catalog.
type Controller struct {
	app     *application.App
	prompt  *Prompter
	out     io.Writer
	styles  cli.Styles
	picker  AccountPicker
	logger  *slog.Logger
	state   State
	account model.Account
}

func New(app *application.App, in io.Reader, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		app:    app,
		prompt: NewPrompter(in, out),
		out:    out,
		styles: cli.NewStyles(out),
		logger: app.Logger,
		state:  StateSelectingAccount,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current dialogue state.
func (c *Controller) State() State {
	return c.state
}

// Account returns the active account. It is only meaningful while in a menu.
func (c *Controller) Account() model.Account {
	return c.account
}

// Run loops until the user quits from the exit confirmation or the input
// ends. Both are a normal termination and return nil.
func (c *Controller) Run(ctx context.Context) error {
	c.println(c.styles.Header("=== Welcome to the Library Management System ==="))

	for c.state != StateTerminated {
		if ctx.Err() != nil {
			c.logger.Info("session cancelled", slog.String("state", c.state.String()))
			c.goodbye()

			return nil
		}

		var err error

		switch c.state {
		case StateSelectingAccount:
			err = c.selectAccount(ctx)
		case StateInMenu:
			err = c.runMenu(ctx)
		case StateConfirmingExit:
			err = c.confirmExit(ctx)
		}

		if err == nil {
			continue
		}

		if isInputClosed(err) {
			c.logger.Info("input closed", slog.String("state", c.state.String()))
			c.goodbye()

			return nil
		}

		c.state = StateTerminated

		return fmt.Errorf("session: %w", err)
	}

	return nil
}

func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, cli.ErrPickerClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (c *Controller) selectAccount(ctx context.Context) error {
	var (
		acct model.Account
		ok   bool
	)

	if c.picker != nil {
		a, err := c.picker.Pick(ctx)
		if err != nil {
			return err
		}

		acct, ok = a, true
	} else {
		c.println("")
		c.println(c.styles.Header("--- Main Menu ---"))
		c.println("Select an account:")

		for i, a := range c.app.Accounts {
			c.printf("%d. %s\n", i+1, a.DisplayName)
		}

		input, err := c.prompt.Ask(ctx, fmt.Sprintf("Enter your choice (1-%d or account name): ", len(c.app.Accounts)))
		if err != nil {
			return err
		}

		acct, ok = model.FindAccount(c.app.Accounts, input)
	}

	if !ok {
		c.report(ErrInvalidChoice)

		return nil
	}

	c.account = acct
	c.logger = c.app.Logger.With(
		slog.String("session_id", uuid.NewString()),
		slog.String("account", acct.ID),
	)
	c.logger.Info("session started", slog.String("role", acct.Role.String()))

	c.printf("\nLogged in as: %s\n", acct.DisplayName)
	c.state = StateInMenu

	return nil
}

var commandLabels = map[model.Command]string{
	model.CommandAdd:     "Add a book",
	model.CommandRemove:  "Remove a book",
	model.CommandSearch:  "Search for a book",
	model.CommandList:    "List all books",
	model.CommandBorrow:  "Borrow a book",
	model.CommandCheckIn: "Check in a book",
	model.CommandExit:    "Exit",
}

func (c *Controller) runMenu(ctx context.Context) error {
	commands := c.account.Role.Commands()

	c.println("")
	c.println(c.styles.Header(fmt.Sprintf("--- %s's Menu ---", c.account.DisplayName)))

	for i, cmd := range commands {
		c.printf("%d. %s\n", i+1, commandLabels[cmd])
	}

	input, err := c.prompt.Ask(ctx, fmt.Sprintf("Enter your choice (1-%d or command name): ", len(commands)))
	if err != nil {
		return err
	}

	cmd, ok := c.account.Role.Lookup(input)
	if !ok {
		c.logger.Debug("invalid menu choice", slog.String("input", input))
		c.report(ErrInvalidChoice)

		return nil
	}

	if cmd == model.CommandExit {
		c.state = StateConfirmingExit

		return nil
	}

	return c.dispatch(ctx, cmd)
}

func (c *Controller) confirmExit(ctx context.Context) error {
	c.println("\nWhat would you like to do?")
	c.println("1. Return to main menu")
	c.println("2. Exit the program")

	input, err := c.prompt.Ask(ctx, "Enter your choice (1 or 2): ")
	if err != nil {
		return err
	}

	switch strings.ToLower(input) {
	case "1", "return":
		c.println("\nReturning to main menu...")
		c.logger.Info("session ended")
		c.account = model.Account{}
		c.logger = c.app.Logger
		c.state = StateSelectingAccount
	case "2", "quit":
		c.logger.Info("session ended", slog.Bool("quit", true))
		c.goodbye()
	default:
		c.println("\nInvalid choice. Returning to menu...")
		c.state = StateInMenu
	}

	return nil
}

func (c *Controller) goodbye() {
	c.println("\nThank you for using the Library Management System. Goodbye!")
	c.state = StateTerminated
}

// report prints the message for a user-facing error and returns nil, or
// returns err unchanged when it is not one.
func (c *Controller) report(err error) error {
	msg, ok := Message(err)
	if !ok {
		return err
	}

	c.println("\n" + c.styles.Error(msg))

	return nil
}

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Controller) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
