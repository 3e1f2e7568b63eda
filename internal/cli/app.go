// Package cli is the interactive shell over the synchronizer. It owns no
// gift state itself; every read goes through the synchronizer's accessors
// and every action through its methods.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/badgergram/badgerclient/internal/api"
	"github.com/badgergram/badgerclient/internal/config"
	"github.com/badgergram/badgerclient/internal/logging"
	"github.com/badgergram/badgerclient/internal/models"
	"github.com/badgergram/badgerclient/internal/state"
	"github.com/badgergram/badgerclient/internal/token"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	client api.Client
	sync   *state.Synchronizer
	tokens *token.Store
	user   *models.User
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	db, err := token.OpenDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewStore(ctx, token.NewSQLiteRepository(db))
	if err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.BaseURL, tokens,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithLogger(log),
	)

	return &App{
		config: cfg,
		log:    log,
		client: client,
		sync:   state.New(client, log),
		tokens: tokens,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.tokens.Token()
	return ok
}

// Run resumes a persisted session if a token survived the last process:
// the profile is re-fetched and all three collections refreshed eagerly.
func (a *App) Run(ctx context.Context) {
	if a.isLoggedIn() {
		user, err := a.client.CurrentUser(ctx)
		if err == nil {
			a.user = user
			a.sync.RefreshAll(ctx)
		}
		// A failed resume (expired token etc.) already cleared the store.
	}
	a.Root(ctx)
}
