package cli

import (
	"context"
	"fmt"

	"github.com/giglink/giglink-cli/internal/client/api"
	"github.com/giglink/giglink-cli/internal/client/models"
	"github.com/giglink/giglink-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) promptRole() (models.Role, error) {
	raw, err := getSimpleText(a.reader, "Account type (creator/brand)", a.out)
	if err != nil {
		return "", err
	}
	role, err := models.ParseRole(raw)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return "", err
	}
	return role, nil
}

// Login prompts for credentials and asks the session manager to
// authenticate. Failures of any kind surface as a single printed message;
// the password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.busy() {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	role, err := a.promptRole()
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Login(ctx, email, password, role); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Login failed"))
		return err
	}
	return nil
}

// Signup registers an account. Success does not authenticate: the session
// manager routes to the verification view.
func (a *App) Signup(ctx context.Context) error {
	if a.busy() {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Pick a username", a.out)
	if err != nil {
		return err
	}
	role, err := a.promptRole()
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Signup(ctx, email, password, username, role); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Signup failed"))
		return err
	}
	return nil
}

// Verify submits the emailed verification code.
func (a *App) Verify(ctx context.Context) error {
	if a.busy() {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	role, err := a.promptRole()
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter verification code", a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.VerifyEmail(ctx, email, code, role); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "Verification failed"))
		return err
	}
	return nil
}

// Logout clears the persisted session. Safe to call at any time.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sessions.Session()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> %s verified=%t\n", u.Username, u.Email, u.Type, u.Verified)
	return nil
}
