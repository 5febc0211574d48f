package gigs

import (
	"context"
	"errors"
	"sync"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/logging"
)

// ErrIncompleteDraft is returned when a gig draft is missing a required
// field. It is raised before anything is sent to the API.
var ErrIncompleteDraft = errors.New("title, description, budget and at least one tag are required")

// Service owns the fetched gig list and the write operations around it.
//
// Refresh is generation-counted: when calls overlap, only the newest one may
// publish its result, so a superseded response that completes late is
// discarded instead of overwriting fresher state.
type Service interface {
	// Refresh fetches the feed. On failure the cached list is returned
	// unchanged alongside the error; there is exactly one attempt.
	Refresh(ctx context.Context) ([]models.GigListing, error)

	// Cached returns the last successfully fetched list.
	Cached() []models.GigListing

	// Create validates the draft locally and posts it.
	Create(ctx context.Context, draft models.GigDraft) error

	// ApplyTo submits an application for the gig with the given id.
	ApplyTo(ctx context.Context, gigID string) error
}

type service struct {
	client api.Client
	log    logging.Logger

	mu   sync.Mutex
	gen  uint64
	feed []models.GigListing
}

// NewService constructs a Service bound to the given API client.
func NewService(client api.Client, log logging.Logger) Service {
	return &service{client: client, log: log}
}

func (s *service) Refresh(ctx context.Context) ([]models.GigListing, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	listings, err := s.client.ListGigs(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error(ctx, "failed to fetch gigs", "error", err)
		return s.feed, err
	}

	if gen != s.gen {
		// a newer Refresh started while this one was in flight
		s.log.Debug(ctx, "discarding superseded gig fetch", "generation", gen)
		return s.feed, nil
	}

	s.feed = listings
	s.log.Debug(ctx, "gig feed updated", "count", len(listings))
	return listings, nil
}

func (s *service) Cached() []models.GigListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed
}

func (s *service) Create(ctx context.Context, draft models.GigDraft) error {
	if draft.Title == "" || draft.Description == "" || draft.Budget <= 0 || len(draft.Tags) == 0 {
		return ErrIncompleteDraft
	}
	return s.client.CreateGig(ctx, draft)
}

func (s *service) ApplyTo(ctx context.Context, gigID string) error {
	return s.client.ApplyToGig(ctx, gigID)
}
