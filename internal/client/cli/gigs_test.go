package cli

import (
	"bufio"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/gigs"
	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/client/session"
	"github.com/giglink/giglink-cli/internal/client/tags"
)

// fakeGigs implements gigs.Service for view tests.
type fakeGigs struct {
	feed       []models.GigListing
	refreshErr error
	created    []models.GigDraft
	createErr  error
	applied    []string
	applyErr   error
}

func (f *fakeGigs) Refresh(context.Context) ([]models.GigListing, error) {
	return f.feed, f.refreshErr
}

func (f *fakeGigs) Cached() []models.GigListing { return f.feed }

func (f *fakeGigs) Create(_ context.Context, d models.GigDraft) error {
	if d.Title == "" || d.Description == "" || d.Budget <= 0 || len(d.Tags) == 0 {
		return gigs.ErrIncompleteDraft
	}
	f.created = append(f.created, d)
	return f.createErr
}

func (f *fakeGigs) ApplyTo(_ context.Context, id string) error {
	f.applied = append(f.applied, id)
	return f.applyErr
}

func sampleFeed() []models.GigListing {
	return []models.GigListing{
		{Gig: models.Gig{ID: "g1", Title: "Tech Review", Budget: 400, Tags: []string{"tech"}}, Brand: "Acme"},
		{Gig: models.Gig{ID: "g2", Title: "Fashion Post", Budget: 4800, Tags: []string{"fashion"}}},
	}
}

func newGigsApp(g *fakeGigs, loggedIn bool) (*App, *bytes.Buffer) {
	state := session.StateAnonymous
	var sess *models.Session
	if loggedIn {
		state = session.StateAuthenticated
		sess = &models.Session{ID: "u1", Username: "alice", Type: models.RoleCreator}
	}
	var out bytes.Buffer
	return &App{
		sessions: &fakeSessions{state: state, sess: sess},
		gigs:     g,
		criteria: gigs.DefaultCriteria(),
		editor:   tags.NewEditor(),
		out:      &out,
		reader:   bufio.NewReader(bytes.NewReader(nil)),
	}, &out
}

func TestBrowse_RequiresLogin(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, false)

	require.NoError(t, a.Browse(context.Background()))
	assert.Contains(t, out.String(), "Log in first")
	assert.NotContains(t, out.String(), "Tech Review")
}

func TestBrowse_RendersFeed(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.NoError(t, a.Browse(context.Background()))
	assert.Contains(t, out.String(), "Tech Review")
	assert.Contains(t, out.String(), "Fashion Post")
	assert.Contains(t, out.String(), "by Acme")
}

func TestBrowse_FailedRefreshKeepsLastKnownFeed(t *testing.T) {
	g := &fakeGigs{feed: sampleFeed(), refreshErr: api.ErrUnavailable}
	a, out := newGigsApp(g, true)

	require.NoError(t, a.Browse(context.Background()))
	assert.Contains(t, out.String(), "last known results")
	assert.Contains(t, out.String(), "Tech Review")
}

func TestSearch_NarrowsView(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.NoError(t, a.Search(context.Background(), "tech"))
	assert.Contains(t, out.String(), "Tech Review")
	assert.NotContains(t, out.String(), "Fashion Post")
}

func TestCategory_AllClearsSelection(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.NoError(t, a.Category(context.Background(), "fashion"))
	assert.NotContains(t, out.String(), "Tech Review")

	out.Reset()
	require.NoError(t, a.Category(context.Background(), "all"))
	assert.Contains(t, out.String(), "Tech Review")
	assert.Contains(t, out.String(), "Fashion Post")
}

func TestBudget_FiltersInclusive(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.NoError(t, a.Budget(context.Background(), "0", "500"))
	assert.Contains(t, out.String(), "Tech Review")
	assert.NotContains(t, out.String(), "Fashion Post")
}

func TestBudget_RejectsBadInput(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.Error(t, a.Budget(context.Background(), "low", "500"))
	assert.Contains(t, out.String(), "must be numbers")

	out.Reset()
	require.Error(t, a.Budget(context.Background(), "600", "500"))
	assert.Contains(t, out.String(), "cannot exceed")
}

func TestResetFilters_RestoresFullFeed(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{feed: sampleFeed()}, true)

	require.NoError(t, a.Search(context.Background(), "tech"))
	out.Reset()

	require.NoError(t, a.ResetFilters(context.Background()))
	assert.Equal(t, gigs.DefaultCriteria(), a.criteria)
	assert.Contains(t, out.String(), "Tech Review")
	assert.Contains(t, out.String(), "Fashion Post")
}

func TestApply_ForwardsID(t *testing.T) {
	g := &fakeGigs{}
	a, out := newGigsApp(g, true)

	require.NoError(t, a.Apply(context.Background(), "g42"))
	assert.Equal(t, []string{"g42"}, g.applied)
	assert.Contains(t, out.String(), "Application submitted")
}

func TestApply_PrintsServerMessage(t *testing.T) {
	g := &fakeGigs{applyErr: &api.APIError{Status: 409, Message: "already applied"}}
	a, out := newGigsApp(g, true)

	require.Error(t, a.Apply(context.Background(), "g42"))
	assert.Contains(t, out.String(), "already applied")
}

func TestCreateGig_PostsDraft(t *testing.T) {
	stubInputs(t, nil, "Tech Review", "Review our gadget", "400", "tech, gaming")

	g := &fakeGigs{}
	a, out := newGigsApp(g, true)

	require.NoError(t, a.CreateGig(context.Background()))
	require.Len(t, g.created, 1)
	assert.Equal(t, models.GigDraft{
		Title:       "Tech Review",
		Description: "Review our gadget",
		Budget:      400,
		Tags:        []string{"tech", "gaming"},
	}, g.created[0])
	assert.Contains(t, out.String(), "Gig created!")
}

func TestCreateGig_RejectsTooManyTags(t *testing.T) {
	stubInputs(t, nil, "T", "D", "100", "a,b,c,d,e,f")

	g := &fakeGigs{}
	a, out := newGigsApp(g, true)

	require.Error(t, a.CreateGig(context.Background()))
	assert.Empty(t, g.created)
	assert.Contains(t, out.String(), "maximum 5 tags")
}

func TestTagEditorFlow(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{}, true)
	ctx := context.Background()

	require.NoError(t, a.TagAdd(ctx, "tech"))
	require.Error(t, a.TagAdd(ctx, "tech"))
	assert.Contains(t, out.String(), "already exists")

	out.Reset()
	require.NoError(t, a.TagRemove(ctx, "tech"))
	assert.Contains(t, out.String(), "No tags yet")
}

func TestTagSave_RequiresAtLeastOneTag(t *testing.T) {
	a, out := newGigsApp(&fakeGigs{}, true)

	require.NoError(t, a.TagSave(context.Background()))
	assert.Contains(t, out.String(), "at least one tag")
}
