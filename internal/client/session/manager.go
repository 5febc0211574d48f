package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/localstore"
	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/common"
	"github.com/giglink/giglink-cli/internal/dbx"
	"github.com/giglink/giglink-cli/internal/logging"
)

// manager is the concrete Manager backed by a remote api.Client and the
// local sqlite store. It is designed for single-goroutine use from the
// UI event loop.
type manager struct {
	client api.Client
	db     *sql.DB
	nav    Navigator
	log    logging.Logger

	state   State
	session *models.Session
	loading bool
	subs    []func()
}

// NewManager constructs a Manager bound to the given API client and local
// database. The state is uninitialized until Initialize runs.
func NewManager(client api.Client, db *sql.DB, nav Navigator, log logging.Logger) Manager {
	return &manager{
		client: client,
		db:     db,
		nav:    nav,
		log:    log,
		state:  StateUninitialized,
	}
}

// StoredToken returns an api.TokenSource reading the persisted bearer token.
func StoredToken(db *sql.DB) api.TokenSource {
	return func(ctx context.Context) (string, error) {
		v, err := localstore.NewSQLiteStore(db).Get(ctx, KeyToken)
		if err != nil {
			return "", err
		}
		return string(v), nil
	}
}

func (m *manager) store() localstore.Store {
	return localstore.NewSQLiteStore(m.db)
}

func (m *manager) Session() *models.Session { return m.session }
func (m *manager) State() State             { return m.state }
func (m *manager) Loading() bool            { return m.loading }

func (m *manager) Subscribe(fn func()) {
	m.subs = append(m.subs, fn)
}

func (m *manager) notify() {
	for _, fn := range m.subs {
		fn()
	}
}

func (m *manager) setState(s State) {
	m.state = s
	m.notify()
}

func (m *manager) setLoading(v bool) {
	m.loading = v
	m.notify()
}

// Initialize reads the persisted token and user record. Both must be present
// and well-formed for the session to be restored; anything else clears both
// keys and yields an anonymous state. Runs once per process start.
func (m *manager) Initialize(ctx context.Context) {
	m.setState(StateLoading)

	store := m.store()

	token, err := store.Get(ctx, KeyToken)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored token", "error", err)
		m.becomeAnonymous(ctx)
		return
	}
	raw, err := store.Get(ctx, KeyUser)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored user record", "error", err)
		m.becomeAnonymous(ctx)
		return
	}

	if len(token) == 0 || len(raw) == 0 {
		m.becomeAnonymous(ctx)
		return
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil || s.ID == "" {
		m.log.Warn(ctx, "discarding unreadable user record", "error", err)
		m.becomeAnonymous(ctx)
		return
	}

	if err := checkToken(string(token)); err != nil {
		m.log.Info(ctx, "discarding stored token", "reason", err)
		m.becomeAnonymous(ctx)
		return
	}

	m.session = &s
	m.setState(StateAuthenticated)
	m.log.Debug(ctx, "session restored", "user", s.Username)
}

// Login authenticates against the API. On success the token and the
// server-provided user record are persisted in one transaction and the UI is
// sent to the dashboard. On any failure the state stays anonymous and the
// error is returned for the caller to render.
func (m *manager) Login(ctx context.Context, email string, password []byte, role models.Role) error {
	m.setLoading(true)
	defer m.setLoading(false)

	token, user, err := m.client.Login(ctx, email, password, role)
	if err != nil {
		m.log.Info(ctx, "login rejected", "email", email, "error", err)
		m.setState(StateAnonymous)
		return err
	}

	if err := m.persist(ctx, token, user); err != nil {
		m.log.Error(ctx, "failed to persist session", "error", err)
		m.setState(StateAnonymous)
		return common.ErrorInternal
	}

	m.session = user
	m.setState(StateAuthenticated)
	m.nav.NavigateTo(RouteDashboard, nil)
	return nil
}

// Signup registers the account. It never authenticates: the follow-up is the
// verification view, which receives the email and role as parameters.
func (m *manager) Signup(ctx context.Context, email string, password []byte, username string, role models.Role) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.client.Signup(ctx, email, password, username, role); err != nil {
		m.log.Info(ctx, "signup rejected", "email", email, "error", err)
		return err
	}

	m.nav.NavigateTo(RouteVerify, map[string]string{
		"email": email,
		"type":  string(role),
	})
	return nil
}

// VerifyEmail submits the emailed code. Success leads to the login view; the
// user still has to log in explicitly.
func (m *manager) VerifyEmail(ctx context.Context, email, code string, role models.Role) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.client.VerifyEmail(ctx, email, code, role); err != nil {
		m.log.Info(ctx, "verification rejected", "email", email, "error", err)
		return err
	}

	m.nav.NavigateTo(RouteLogin, nil)
	return nil
}

// Logout clears both storage keys, drops the in-memory session, and sends
// the UI to the landing view. Storage errors are logged but do not prevent
// the transition; calling it while already anonymous is a no-op on storage.
func (m *manager) Logout(ctx context.Context) {
	m.becomeAnonymous(ctx)
	m.nav.NavigateTo(RouteLanding, nil)
}

// persist writes the token and user record in a single transaction so the
// invariant "a session is valid only while a matching token is present"
// holds even if the process dies mid-write.
func (m *manager) persist(ctx context.Context, token string, user *models.Session) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := localstore.NewSQLiteStore(tx)
		if err := store.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return store.Set(ctx, KeyUser, raw)
	})
}

// becomeAnonymous clears both keys together and transitions to anonymous.
func (m *manager) becomeAnonymous(ctx context.Context) {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := localstore.NewSQLiteStore(tx)
		if err := store.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return store.Delete(ctx, KeyUser)
	})
	if err != nil {
		m.log.Warn(ctx, "failed to clear stored session", "error", err)
	}

	m.session = nil
	m.setState(StateAnonymous)
}
