package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/logging"
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	validate *validator.Validate
	log      logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a Client for the API rooted at baseURL. The timeout
// applies per request; there are no retries. tokens may be nil for a client
// that only performs anonymous calls.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends one request and decodes the response into out (when out is
// non-nil). authed requests carry the bearer token from the TokenSource.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if authed {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(ctx, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// statusError maps a non-2xx response onto the error taxonomy, extracting
// the server message when the body carries one.
func (c *HTTPClient) statusError(ctx context.Context, status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)

	c.log.Debug(ctx, "api request rejected", "status", status, "message", er.Message)

	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if er.Message == "" {
		er.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: er.Message}
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte, role models.Role) (string, *models.Session, error) {
	req := loginRequest{Email: email, Password: string(password), Type: string(role)}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp, false); err != nil {
		return "", nil, err
	}
	if err := c.validate.Struct(&resp); err != nil {
		return "", nil, fmt.Errorf("%w: login response: %v", ErrBadResponse, err)
	}
	return resp.AccessToken, resp.User.toModel(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, email string, password []byte, username string, role models.Role) error {
	req := signupRequest{Email: email, Password: string(password), Username: username, Type: string(role)}
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil, false)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, email, code string, role models.Role) error {
	req := verifyRequest{Email: email, Code: code, Type: string(role)}
	return c.do(ctx, http.MethodPost, "/auth/verify", req, nil, false)
}

func (c *HTTPClient) ListGigs(ctx context.Context) ([]models.GigListing, error) {
	var dtos []gigListingDTO
	if err := c.do(ctx, http.MethodGet, "/gigs/", nil, &dtos, true); err != nil {
		return nil, err
	}

	listings := make([]models.GigListing, 0, len(dtos))
	for i := range dtos {
		if err := c.validate.Struct(&dtos[i]); err != nil {
			return nil, fmt.Errorf("%w: gig listing %d: %v", ErrBadResponse, i, err)
		}
		listings = append(listings, dtos[i].toModel())
	}
	return listings, nil
}

func (c *HTTPClient) CreateGig(ctx context.Context, draft models.GigDraft) error {
	return c.do(ctx, http.MethodPost, "/gigs/", draft, nil, true)
}

func (c *HTTPClient) ApplyToGig(ctx context.Context, gigID string) error {
	return c.do(ctx, http.MethodPost, "/gigs/apply", applyRequest{GigID: gigID}, nil, true)
}

func (c *HTTPClient) ReplaceTags(ctx context.Context, tags []string) error {
	return c.do(ctx, http.MethodPost, "/users/tags", replaceTagsRequest{Tags: tags}, nil, true)
}

func (c *HTTPClient) LinkSocial(ctx context.Context, platform, handle string) error {
	return c.do(ctx, http.MethodPost, "/users/social", linkSocialRequest{Platform: platform, Handle: handle}, nil, true)
}
