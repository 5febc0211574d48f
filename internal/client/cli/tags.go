package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/giglink/giglink-cli/internal/client/api"
)

// ShowTags prints the local, unsaved tag set.
func (a *App) ShowTags(ctx context.Context) error {
	a.printTags()
	return nil
}

// TagAdd adds a tag to the local set. Nothing is persisted until TagSave.
func (a *App) TagAdd(ctx context.Context, tag string) error {
	if err := a.editor.Add(tag); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	a.printTags()
	return nil
}

// TagRemove removes a tag from the local set.
func (a *App) TagRemove(ctx context.Context, tag string) error {
	a.editor.Remove(tag)
	a.printTags()
	return nil
}

// TagSave replaces the server-side tag set with the local one.
func (a *App) TagSave(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}
	if a.editor.Empty() {
		fmt.Fprintln(a.out, "Please add at least one tag.")
		return nil
	}

	if err := a.api.ReplaceTags(ctx, a.editor.List()); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Failed to update tags"))
		return err
	}
	fmt.Fprintln(a.out, "Tags updated successfully!")
	return nil
}

// Social links a social media handle to the current profile.
func (a *App) Social(ctx context.Context, platform, handle string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return nil
	}

	if err := a.api.LinkSocial(ctx, platform, handle); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Failed to link account"))
		return err
	}
	fmt.Fprintf(a.out, "Linked %s account @%s.\n", platform, handle)
	return nil
}

func (a *App) printTags() {
	if a.editor.Empty() {
		fmt.Fprintln(a.out, "No tags yet (up to 5).")
		return
	}
	fmt.Fprintf(a.out, "Tags (%d/5): %s\n", a.editor.Len(), strings.Join(a.editor.List(), ", "))
}
