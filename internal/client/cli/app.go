// Package cli is the interactive consumer of the client data layer: a
// REPL that dispatches store operations and renders slice snapshots. It
// is intentionally thin view glue; all state lives in the store.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/config"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/session"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/store"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/logging"
)

// defaultPageSize matches the web client's list page size.
const defaultPageSize = 12

type App struct {
	config  *config.Config
	session *session.Store
	api     *api.Client
	store   *store.Store
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, metrics *api.Metrics) (*App, error) {
	sess, err := session.Open(ctx, cfg.SessionPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:  cfg,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}

	app.api = api.New(api.Options{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.RequestTimeout,
		Session:        sess,
		OnUnauthorized: app.onUnauthorized,
		Logger:         log,
		Metrics:        metrics,
	})
	app.store = store.New(app.api, sess, log)

	return app, nil
}

// onUnauthorized is the CLI's "redirect to login": the wrapper has already
// wiped the persisted session, so reset the auth slice and tell the user.
func (a *App) onUnauthorized() {
	a.store.ForceLogout()
	printlnFn("Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().LoggedIn
}

func (a *App) Run(ctx context.Context) {
	defer a.session.Close()

	if err := a.store.RestoreSession(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore session", "err", err)
	}

	a.Root(ctx)
}
