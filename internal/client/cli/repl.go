package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Logout(ctx context.Context) error

	Browse(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Category(ctx context.Context, category string) error
	Budget(ctx context.Context, minArg, maxArg string) error
	ResetFilters(ctx context.Context) error
	Apply(ctx context.Context, gigID string) error
	CreateGig(ctx context.Context) error

	ShowTags(ctx context.Context) error
	TagAdd(ctx context.Context, tag string) error
	TagRemove(ctx context.Context, tag string) error
	TagSave(ctx context.Context) error
	Social(ctx context.Context, platform, handle string) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Handler errors are ignored here; handlers print their own messages. This
// keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "giglink %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: gigs, search <q>, category <c|all>, budget <min> <max>, reset, apply <id>, create, tags, tag add <t>, tag rm <t>, tag save, social <platform> <handle>, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, signup, verify, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "g", "gigs":
			_ = a.Browse(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: category <name|all>")
				continue
			}
			_ = a.Category(ctx, args[0])

		case "budget":
			if len(args) != 2 {
				fmt.Fprintln(out, "Usage: budget <min> <max>")
				continue
			}
			_ = a.Budget(ctx, args[0], args[1])

		case "reset":
			_ = a.ResetFilters(ctx)

		case "apply":
			if len(args) != 1 {
				fmt.Fprintln(out, "Usage: apply <gig id>")
				continue
			}
			_ = a.Apply(ctx, args[0])

		case "create":
			_ = a.CreateGig(ctx)

		case "tags":
			_ = a.ShowTags(ctx)

		case "tag":
			if len(args) < 1 {
				fmt.Fprintln(out, "Usage: tag add <t> | tag rm <t> | tag save")
				continue
			}
			switch args[0] {
			case "add":
				if len(args) != 2 {
					fmt.Fprintln(out, "Usage: tag add <t>")
					continue
				}
				_ = a.TagAdd(ctx, args[1])
			case "rm":
				if len(args) != 2 {
					fmt.Fprintln(out, "Usage: tag rm <t>")
					continue
				}
				_ = a.TagRemove(ctx, args[1])
			case "save":
				_ = a.TagSave(ctx)
			default:
				fmt.Fprintln(out, "Usage: tag add <t> | tag rm <t> | tag save")
			}

		case "social":
			if len(args) != 2 {
				fmt.Fprintln(out, "Usage: social <platform> <handle>")
				continue
			}
			_ = a.Social(ctx, args[0], args[1])

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
