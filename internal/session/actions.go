package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/libris/internal/catalog"
	"github.com/inovacc/libris/internal/model"
)

// dispatch runs one catalog command. User-facing failures are printed and
// swallowed so the menu loop continues; anything else is returned.
func (c *Controller) dispatch(ctx context.Context, cmd model.Command) error {
	var err error

	switch cmd {
	case model.CommandAdd:
		err = c.add(ctx)
	case model.CommandRemove:
		err = c.remove(ctx)
	case model.CommandSearch:
		err = c.search(ctx)
	case model.CommandList:
		c.list()
	case model.CommandBorrow:
		err = c.borrow(ctx)
	case model.CommandCheckIn:
		err = c.checkIn(ctx)
	default:
		err = ErrInvalidChoice
	}

	if err == nil || isInputClosed(err) {
		return err
	}

	c.logger.Debug("operation rejected",
		slog.String("command", string(cmd)),
		slog.String("error", err.Error()),
	)

	return c.report(err)
}

func (c *Controller) askTitle(ctx context.Context, verb string) (string, error) {
	title, err := c.prompt.Ask(ctx, fmt.Sprintf("\nEnter the title of the book to %s:\n", verb))
	if err != nil {
		return "", err
	}

	if title == "" {
		return "", ErrEmptyInput
	}

	return title, nil
}

func (c *Controller) add(ctx context.Context) error {
	if c.app.Catalog.Full() {
		return catalog.ErrCapacityExceeded
	}

	title, err := c.askTitle(ctx, "add")
	if err != nil {
		return err
	}

	book, err := c.app.Catalog.Add(title)
	if err != nil {
		return err
	}

	c.logger.Info("book added", slog.String("title", book.Title))
	c.println(c.styles.Success(fmt.Sprintf("Added: %q", book.Title)))

	return nil
}

func (c *Controller) remove(ctx context.Context) error {
	if c.app.Catalog.Empty() {
		return catalog.ErrCatalogEmpty
	}

	title, err := c.askTitle(ctx, "remove")
	if err != nil {
		return err
	}

	book, err := c.app.Catalog.Remove(title)
	if err != nil {
		return err
	}

	c.logger.Info("book removed", slog.String("title", book.Title))
	c.println(c.styles.Success(fmt.Sprintf("Removed: %q", book.Title)))

	return nil
}

func (c *Controller) search(ctx context.Context) error {
	if c.app.Catalog.Empty() {
		return catalog.ErrCatalogEmpty
	}

	term, err := c.prompt.Ask(ctx, fmt.Sprintf("\nEnter at least %d characters of the book title to search for:\n", catalog.MinSearchTerm))
	if err != nil {
		return err
	}

	if term == "" {
		return ErrEmptyInput
	}

	matches, err := c.app.Catalog.Search(term)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		c.printf("\nNo books found matching %q.\n", term)

		return nil
	}

	c.printf("\nFound %d book(s) matching %q:\n", len(matches), term)

	for i, b := range matches {
		c.printf("%d. %s - %s\n", i+1, b.Title, b.Status())
	}

	return nil
}

func (c *Controller) list() {
	c.println("\n" + c.styles.Header("Catalog:"))

	books := c.app.Catalog.List()
	if len(books) == 0 {
		c.println(c.styles.Muted("(empty)"))

		return
	}

	for i, b := range books {
		c.printf("%d. %s\n", i+1, b)
	}
}

func (c *Controller) borrow(ctx context.Context) error {
	if c.app.Catalog.Empty() {
		return catalog.ErrCatalogEmpty
	}

	if c.app.Catalog.BorrowedCount(c.account.ID) >= catalog.MaxBorrowPerUser {
		return catalog.ErrBorrowLimitExceeded
	}

	title, err := c.askTitle(ctx, "borrow")
	if err != nil {
		return err
	}

	book, err := c.app.Catalog.Borrow(title, c.account)
	if err != nil {
		return err
	}

	c.logger.Info("book borrowed", slog.String("title", book.Title))
	c.println("\n" + c.styles.Success(fmt.Sprintf("%s successfully borrowed %q.", c.account.ID, book.Title)))

	return nil
}

func (c *Controller) checkIn(ctx context.Context) error {
	if c.app.Catalog.Empty() {
		return catalog.ErrCatalogEmpty
	}

	title, err := c.askTitle(ctx, "check in")
	if err != nil {
		return err
	}

	book, err := c.app.Catalog.CheckIn(title, c.account)
	if err != nil {
		return err
	}

	c.logger.Info("book checked in", slog.String("title", book.Title))
	c.println("\n" + c.styles.Success(fmt.Sprintf("Checked in: %q", book.Title)))

	return nil
}
