package models

import "time"

// MaxTags bounds a gig's (and a creator's) tag set.
const MaxTags = 5

// Gig is a brand-posted collaboration opportunity.
type Gig struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      int       `json:"budget"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	BrandID     string    `json:"brand_id"`
}

// GigDraft is the client-side input for creating a gig. All fields are
// required and at least one tag must be present before it is sent anywhere.
type GigDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      int      `json:"budget"`
	Tags        []string `json:"tags"`
}

// GigListing is one element of the discovery feed: the gig itself, the
// posting brand's display name, and the server-computed count of tags
// matching the current creator. MatchingTags is informational only and is
// never recomputed locally.
type GigListing struct {
	Gig          Gig    `json:"gig"`
	Brand        string `json:"brand"`
	MatchingTags int    `json:"matching_tags"`
}
