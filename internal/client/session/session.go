// Package session owns the client's authentication state: the current user,
// the busy flag, and the login/signup/verify/logout operations with their
// token lifecycle. It is the single writer of the persisted `token` and
// `user` keys; the two are always written and cleared together.
package session

import (
	"context"

	"github.com/giglink/giglink-cli/internal/client/models"
)

// State is the session manager's lifecycle state.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Route names the views the manager asks the UI to switch to after a state
// transition.
type Route string

const (
	RouteLanding   Route = "landing"
	RouteLogin     Route = "login"
	RouteVerify    Route = "verify"
	RouteDashboard Route = "dashboard"
)

// Navigator is implemented by the view layer. Params carry view inputs, e.g.
// the email and role forwarded to the verification view after signup.
type Navigator interface {
	NavigateTo(route Route, params map[string]string)
}

// Canonical storage keys. Every view reads and writes these two and nothing
// else.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Manager is the injectable session store views program against.
//
// Auth operations return the underlying error so the caller can render it
// with api.UserMessage; the manager itself never leaves the busy flag set or
// the state machine in loading, whatever the outcome. The manager does not
// serialize overlapping calls: callers are expected to disable triggering
// controls while Loading() is true, and concurrent writers race with
// last-writer-wins semantics on storage.
type Manager interface {
	// Initialize restores a persisted session. Corrupt or partial storage is
	// treated as absence: both keys are cleared and the state becomes
	// anonymous. It never fails outward.
	Initialize(ctx context.Context)

	Login(ctx context.Context, email string, password []byte, role models.Role) error
	Signup(ctx context.Context, email string, password []byte, username string, role models.Role) error
	VerifyEmail(ctx context.Context, email, code string, role models.Role) error

	// Logout clears both storage keys, becomes anonymous, and navigates to
	// the landing view. It is idempotent and cannot fail.
	Logout(ctx context.Context)

	Session() *models.Session
	State() State
	Loading() bool

	// Subscribe registers fn to run after every state or loading change.
	Subscribe(fn func())
}
