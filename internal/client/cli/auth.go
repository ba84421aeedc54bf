package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/raghhhava7/devclimate/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. On success the
// dashboard is activated, which replays any deferred search. Credential
// rejections and malformed responses are reported to the user; the loop
// keeps running either way.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Username)
	a.openDashboard(ctx)
	return nil
}

// Register prompts for a username, email, and password and attempts to
// create an account. Same contract as Login.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Username)
	a.openDashboard(ctx)
	return nil
}

// Logout clears the session and the rendered page. Never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.page = nil
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the authenticated identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
	return nil
}

func (a *App) printAuthError(err error) {
	var authErr *api.AuthenticationError
	var protoErr *api.ProtocolError
	switch {
	case errors.As(err, &authErr):
		fmt.Fprintln(a.out, authErr.Message)
	case errors.As(err, &protoErr):
		fmt.Fprintln(a.out, "The server answered in an unexpected format. Please check that the API is running correctly.")
	default:
		fmt.Fprintf(a.out, "Request failed: %s\n", err.Error())
	}
}
