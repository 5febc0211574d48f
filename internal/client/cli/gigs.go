package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/gigs"
	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/client/tags"
)

// Browse refreshes the feed and renders it through the current filter. A
// failed refresh keeps the last known feed on screen.
func (a *App) Browse(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if _, err := a.gigs.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not refresh gigs; showing last known results.")
	}
	a.renderFiltered()
	return nil
}

// Search sets the free-text query and recomputes the view. An empty query
// clears it.
func (a *App) Search(ctx context.Context, query string) error {
	a.criteria.Query = query
	a.renderFiltered()
	return nil
}

// Category selects a single category; "all" clears the selection.
func (a *App) Category(ctx context.Context, category string) error {
	if category == "all" {
		category = ""
	}
	a.criteria.Category = category
	a.renderFiltered()
	return nil
}

// Budget sets the inclusive budget range.
func (a *App) Budget(ctx context.Context, minArg, maxArg string) error {
	lo, err := strconv.Atoi(minArg)
	if err != nil {
		fmt.Fprintln(a.out, "Budget bounds must be numbers.")
		return err
	}
	hi, err := strconv.Atoi(maxArg)
	if err != nil {
		fmt.Fprintln(a.out, "Budget bounds must be numbers.")
		return err
	}
	if lo > hi {
		fmt.Fprintln(a.out, "Budget minimum cannot exceed the maximum.")
		return fmt.Errorf("invalid budget range [%d, %d]", lo, hi)
	}

	a.criteria.Budget = [2]int{lo, hi}
	a.renderFiltered()
	return nil
}

// ResetFilters restores the default criteria and shows the full feed again.
func (a *App) ResetFilters(ctx context.Context) error {
	a.criteria = gigs.DefaultCriteria()
	a.renderFiltered()
	return nil
}

// Apply submits an application for a gig.
func (a *App) Apply(ctx context.Context, gigID string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.gigs.ApplyTo(ctx, gigID); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Failed to apply"))
		return err
	}
	fmt.Fprintln(a.out, "Application submitted!")
	return nil
}

// CreateGig walks a brand through posting a gig. Validation failures are
// reported before anything is sent.
func (a *App) CreateGig(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	budgetRaw, err := getSimpleText(a.reader, "Budget ($)", a.out)
	if err != nil {
		return err
	}
	budget, err := strconv.Atoi(budgetRaw)
	if err != nil {
		fmt.Fprintln(a.out, "Budget must be a number.")
		return err
	}
	tagsRaw, err := getSimpleText(a.reader, "Tags (comma-separated, up to 5)", a.out)
	if err != nil {
		return err
	}

	ed := tags.NewEditor()
	for _, part := range strings.Split(tagsRaw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if err := ed.Add(part); err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
	}

	draft := models.GigDraft{Title: title, Description: description, Budget: budget, Tags: ed.List()}
	if err := a.gigs.Create(ctx, draft); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, err.Error()))
		return err
	}

	fmt.Fprintln(a.out, "Gig created!")
	return nil
}

// renderFiltered recomputes the filtered view over the cached feed. The
// recompute is total; nothing is indexed or memoized.
func (a *App) renderFiltered() {
	a.renderListings(gigs.Filter(a.gigs.Cached(), a.criteria))
}

func (a *App) renderListings(listings []models.GigListing) {
	if len(listings) == 0 {
		fmt.Fprintln(a.out, "No gigs match the current filters.")
		return
	}
	for _, l := range listings {
		fmt.Fprintf(a.out, "%-10s %-30s $%-6d tags=%s", l.Gig.ID, l.Gig.Title, l.Gig.Budget, strings.Join(l.Gig.Tags, ","))
		if l.Brand != "" {
			fmt.Fprintf(a.out, "  by %s", l.Brand)
		}
		if l.MatchingTags > 0 {
			fmt.Fprintf(a.out, "  matching_tags=%d", l.MatchingTags)
		}
		fmt.Fprintln(a.out)
	}
}
