// Package tags implements the bounded tag set shared by the profile, gig
// creation, and tag management views: a local, unsaved set of up to five
// unique strings. Persisting it is a separate, explicit save that posts the
// full set; there is no incremental sync.
package tags

import (
	"errors"
	"strings"

	"github.com/giglink/giglink-cli/internal/client/models"
)

// Validation errors. All are raised before anything touches the network.
var (
	ErrEmpty     = errors.New("tag is empty")
	ErrDuplicate = errors.New("tag already exists")
	ErrLimit     = errors.New("maximum 5 tags allowed")
)

// Editor is a mutable tag set bounded to models.MaxTags entries. Rejected
// operations leave the set unchanged.
type Editor struct {
	tags []string
}

// NewEditor seeds an editor with the given tags. Seeds beyond the bound or
// duplicated are dropped silently; the seed is trusted far less than user
// input because it comes from storage.
func NewEditor(initial ...string) *Editor {
	e := &Editor{}
	for _, t := range initial {
		_ = e.Add(t)
	}
	return e
}

// Add inserts the trimmed tag. Empty input, exact duplicates, and additions
// past the bound are rejected with the matching sentinel error.
func (e *Editor) Add(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrEmpty
	}
	for _, t := range e.tags {
		if t == tag {
			return ErrDuplicate
		}
	}
	if len(e.tags) >= models.MaxTags {
		return ErrLimit
	}
	e.tags = append(e.tags, tag)
	return nil
}

// Remove deletes the tag if present. Removing an absent tag is a no-op.
func (e *Editor) Remove(tag string) {
	for i, t := range e.tags {
		if t == tag {
			e.tags = append(e.tags[:i], e.tags[i+1:]...)
			return
		}
	}
}

// List returns a copy of the current set in insertion order.
func (e *Editor) List() []string {
	out := make([]string, len(e.tags))
	copy(out, e.tags)
	return out
}

// Len reports the current set size.
func (e *Editor) Len() int { return len(e.tags) }

// Empty reports whether the set has no tags.
func (e *Editor) Empty() bool { return len(e.tags) == 0 }
