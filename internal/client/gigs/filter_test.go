package gigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giglink/giglink-cli/internal/client/models"
)

func sampleFeed() []models.GigListing {
	return []models.GigListing{
		{Gig: models.Gig{ID: "g1", Title: "Tech Review", Budget: 400, Tags: []string{"tech"}}},
		{Gig: models.Gig{ID: "g2", Title: "Fashion Post", Budget: 4800, Tags: []string{"fashion"}}},
	}
}

func ids(listings []models.GigListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Gig.ID)
	}
	return out
}

func TestFilter_QueryMatchesTitleCaseInsensitive(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "tech"

	got := Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g1"}, ids(got))
}

func TestFilter_CategoryIsExactTagMembership(t *testing.T) {
	c := DefaultCriteria()
	c.Category = "fashion"

	got := Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g2"}, ids(got))
}

func TestFilter_BudgetRangeIsInclusive(t *testing.T) {
	c := DefaultCriteria()
	c.Budget = [2]int{0, 500}

	got := Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g1"}, ids(got))

	// boundary values are in range
	c.Budget = [2]int{400, 4800}
	got = Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g1", "g2"}, ids(got))
}

func TestFilter_PredicatesComposeConjunctively(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "e" // both titles contain "e"
	c.Budget = [2]int{0, 5000}

	got := Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g1", "g2"}, ids(got))

	c.Category = "tech"
	got = Filter(sampleFeed(), c)
	assert.Equal(t, []string{"g1"}, ids(got))
}

func TestFilter_QueryMatchesDescriptionAndTags(t *testing.T) {
	feed := []models.GigListing{
		{Gig: models.Gig{ID: "g1", Title: "Post", Description: "unbox our gadget", Budget: 100, Tags: []string{"tech"}}},
		{Gig: models.Gig{ID: "g2", Title: "Post", Description: "try the serum", Budget: 100, Tags: []string{"beauty"}}},
	}

	c := DefaultCriteria()
	c.Query = "GADGET"
	assert.Equal(t, []string{"g1"}, ids(Filter(feed, c)))

	c.Query = "beau"
	assert.Equal(t, []string{"g2"}, ids(Filter(feed, c)))
}

func TestFilter_EmptyCriteriaKeepsEverything(t *testing.T) {
	got := Filter(sampleFeed(), DefaultCriteria())
	require.Len(t, got, 2)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	feed := sampleFeed()
	c := DefaultCriteria()
	c.Query = "tech"

	_ = Filter(feed, c)
	require.Len(t, feed, 2)
}

func TestDefaultCriteria_IsTheResetState(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, "", c.Query)
	assert.Equal(t, "", c.Category)
	assert.Equal(t, [2]int{0, 5000}, c.Budget)
}
