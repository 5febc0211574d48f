// Package cli is the terminal front end of the giglink client: a REPL whose
// commands map onto the views of the marketplace (browse, filter, tags,
// profile) and onto the session lifecycle.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/config"
	"github.com/giglink/giglink-cli/internal/client/gigs"
	"github.com/giglink/giglink-cli/internal/client/localstore"
	"github.com/giglink/giglink-cli/internal/client/session"
	"github.com/giglink/giglink-cli/internal/client/tags"
	"github.com/giglink/giglink-cli/internal/logging"
)

// App wires the session manager, the gig service, and the tag editor to the
// REPL. It also implements session.Navigator: state transitions land here as
// view switches.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      api.Client
	sessions session.Manager
	gigs     gigs.Service

	criteria gigs.Criteria
	editor   *tags.Editor
	route    session.Route

	reader *bufio.Reader
	out    io.Writer
}

var _ session.Navigator = (*App)(nil)

// NewApp assembles the client: local store, API client, session manager,
// gig service.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewLogger(os.Stdout, cfg.Env, cfg.Debug)

	db, err := localstore.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, session.StoredToken(db), log)

	a := &App{
		config:   cfg,
		log:      log,
		db:       db,
		api:      apiClient,
		criteria: gigs.DefaultCriteria(),
		editor:   tags.NewEditor(),
		route:    session.RouteLanding,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.sessions = session.NewManager(apiClient, db, a, log)
	a.gigs = gigs.NewService(apiClient, log)
	return a, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.sessions.Initialize(ctx)

	fmt.Fprintln(a.out, "Welcome to giglink (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// Close releases the API client and the local database.
func (a *App) Close() {
	_ = a.api.Close()
	_ = a.db.Close()
}

// NavigateTo implements session.Navigator. Routes map to prompt modes plus a
// printed hint about what to do next.
func (a *App) NavigateTo(route session.Route, params map[string]string) {
	a.route = route
	switch route {
	case session.RouteDashboard:
		fmt.Fprintln(a.out, "Welcome back! Type 'gigs' to browse the feed.")
	case session.RouteVerify:
		fmt.Fprintf(a.out, "Verification code sent to %s. Type 'verify' once you have it.\n", params["email"])
	case session.RouteLogin:
		fmt.Fprintln(a.out, "Email verified. Type 'login' to sign in.")
	case session.RouteLanding:
		fmt.Fprintln(a.out, "You have been logged out.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State() == session.StateAuthenticated
}

// busy refuses a command while an auth call is in flight. The manager itself
// does not serialize overlapping calls; the UI is responsible for not
// triggering them.
func (a *App) busy() bool {
	if a.sessions.Loading() {
		fmt.Fprintln(a.out, "Another request is in progress, hold on...")
		return true
	}
	return false
}

func (a *App) getStatus() string {
	if u := a.sessions.Session(); u != nil {
		return fmt.Sprintf("(%s %s)", u.Username, u.Type)
	}
	if a.route == session.RouteVerify {
		return "(verify pending)"
	}
	return ""
}
