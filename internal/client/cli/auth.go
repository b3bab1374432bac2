package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new portal account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Enter role (patient/doctor)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.Register(ctx, userName, password, displayName, role); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, userName, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.user = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.DisplayName))
	return nil
}

// Logout drops the session tokens.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
