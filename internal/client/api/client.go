// Package api implements the giglink client's view of the marketplace REST
// API. The server owns all business rules; this layer only shapes requests,
// validates response payloads at the boundary, and maps failures onto a small
// error taxonomy.
package api

import (
	"context"
	"errors"

	"github.com/giglink/giglink-cli/internal/client/models"
)

// Sentinel errors returned by Client implementations. API-rejected requests
// carry the server's message via *APIError instead.
var (
	// ErrUnavailable wraps transport-level failures: connection refused,
	// timeouts, unparseable bodies. The original cause is attached with %w.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadResponse is returned when a 2xx body does not match the expected
	// schema. Shape drift fails here instead of leaking zero values upward.
	ErrBadResponse = errors.New("malformed server response")
)

// APIError is a non-2xx response with the message the server provided.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// UserMessage extracts a user-presentable message from err. Server-provided
// messages pass through; everything else collapses to fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// TokenSource supplies the bearer token for authenticated requests. It is
// injected so the transport layer never touches session storage directly.
type TokenSource func(ctx context.Context) (string, error)

// Client is the marketplace API surface the rest of the client programs
// against. All methods honor context cancellation; none retries.
type Client interface {
	Close() error

	// Login exchanges credentials for a bearer token and the authoritative
	// user record. A success response without a user record is an error.
	Login(ctx context.Context, email string, password []byte, role models.Role) (string, *models.Session, error)

	// Signup registers an account. It does not authenticate; the account must
	// be verified before login is permitted.
	Signup(ctx context.Context, email string, password []byte, username string, role models.Role) error

	// VerifyEmail submits the emailed verification code.
	VerifyEmail(ctx context.Context, email, code string, role models.Role) error

	// ListGigs fetches the discovery feed for the current session.
	ListGigs(ctx context.Context) ([]models.GigListing, error)

	// CreateGig posts a new gig.
	CreateGig(ctx context.Context, draft models.GigDraft) error

	// ApplyToGig submits an application for the gig with the given id.
	ApplyToGig(ctx context.Context, gigID string) error

	// ReplaceTags replaces the current user's tag set wholesale.
	ReplaceTags(ctx context.Context, tags []string) error

	// LinkSocial attaches a social media handle to the current profile.
	LinkSocial(ctx context.Context, platform, handle string) error
}
