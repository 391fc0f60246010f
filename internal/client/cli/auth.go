package cli

import (
	"context"
	"os"

	"github.com/kan-1337/movie-explorer/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the login handshake. The password
// buffer is wiped before returning. Errors are reported to the user and
// returned unchanged.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		printlnFn("Login failed:", friendlyError(err))
		return err
	}

	printfFn("Logged in as %s (account %d)\n", user.Username, user.ID)
	return nil
}

// Logout tears the session down. Local state is always cleared; only a
// storage failure is reported as an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout problem:", friendlyError(err))
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current account, if any.
func (a *App) WhoAmI(_ context.Context) error {
	user := a.auth.CurrentUser()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printfFn("%s (account %d)\n", user.Username, user.ID)
	return nil
}
