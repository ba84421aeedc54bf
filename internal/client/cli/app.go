package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/raghhhava7/devclimate/internal/client/api"
	"github.com/raghhhava7/devclimate/internal/client/config"
	"github.com/raghhhava7/devclimate/internal/client/localdb"
	"github.com/raghhhava7/devclimate/internal/client/models"
	"github.com/raghhhava7/devclimate/internal/client/repositories/state"
	"github.com/raghhhava7/devclimate/internal/client/services"
	"github.com/raghhhava7/devclimate/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session store, the history client, and the local state
// repository behind the interactive loop. It is the single owner of the
// session lifecycle; nothing else mutates it.
type App struct {
	session services.Session
	history services.History
	states  state.Repository
	log     logging.Logger

	db     *sql.DB
	client api.Client

	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	pageSize int
	page     *models.HistoryPage

	// deferredSearch is the city supplied at launch (-s), consumed by the
	// first dashboard activation.
	deferredSearch string
}

// NewApp builds the application from config: opens the local state DB,
// constructs the REST client and the services on top of it.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, cfg.StatePath)
	if err != nil {
		log.Error(ctx, "error initializing local state database", "error", err.Error())
		return nil, err
	}

	states := state.NewSQLiteRepository(db)
	client := api.NewRESTClient(cfg.BaseURL)

	return &App{
		session:        services.NewSession(client, states, log),
		history:        services.NewHistory(client),
		states:         states,
		log:            log,
		db:             db,
		client:         client,
		in:             os.Stdin,
		out:            os.Stdout,
		reader:         bufio.NewReader(os.Stdin),
		pageSize:       cfg.PageSize,
		deferredSearch: cfg.StartupSearch,
	}, nil
}

// Close releases the local database and transport resources.
func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isAuthenticated() bool {
	return a.session.IsAuthenticated()
}
