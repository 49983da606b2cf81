package application

import (
	"io"
	"log/slog"

	"github.com/inovacc/libris/internal/catalog"
	"github.com/inovacc/libris/internal/model"
)

const (
	// AppName is the application name used for the command and identification
	AppName = "libris"

	// Version is reported by --version
	Version = "0.1.0"
)

// App is the state owned by the entry point and handed to every session:
// the single catalog, the fixed accounts and the logger.
type App struct {
	Catalog  *catalog.Catalog
	Accounts []model.Account
	Logger   *slog.Logger
}

// New builds an App with an empty catalog. A nil logger discards output.
func New(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &App{
		Catalog:  catalog.New(),
		Accounts: model.Accounts(),
		Logger:   logger,
	}
}
