// Package cli implements the interactive command-line client for the portal:
// a small REPL over the HTTP API with commands for authentication and the
// medical file workflows.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/healophile/internal/client/api"
	"github.com/dmitrijs2005/healophile/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	user   *api.User
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.DisplayName + " " + a.user.Role + ")"
}
