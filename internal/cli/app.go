// Package cli implements the management console for the profiles service:
// a small set of administrative commands for creating and maintaining user
// accounts, prompting on the terminal for anything not supplied.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/profiles/internal/logging"
	"github.com/dmitrijs2005/profiles/internal/models"
)

// AccountService is the slice of the account service the console needs.
type AccountService interface {
	CreateUser(ctx context.Context, email, name, password string) (*models.User, error)
	CreateSuperuser(ctx context.Context, email, name, password string) (*models.User, error)
	SetPassword(ctx context.Context, email, password string) error
	Deactivate(ctx context.Context, email string) error
	Activate(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]*models.User, error)
}

type App struct {
	accounts AccountService
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(accounts AccountService, logger logging.Logger) *App {
	return &App{
		accounts: accounts,
		logger:   logger.With("module", "console"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run dispatches the first positional argument to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	switch args[0] {
	case "createuser":
		return a.CreateUser(ctx)
	case "createsuperuser":
		return a.CreateSuperuser(ctx)
	case "setpassword":
		return a.SetPassword(ctx)
	case "deactivate":
		return a.Deactivate(ctx)
	case "activate":
		return a.Activate(ctx)
	case "delete":
		return a.Delete(ctx)
	case "list":
		return a.List(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `Usage: profiles [flags] <command>

Commands:
  createuser       create a regular account
  createsuperuser  create an account with staff and superuser flags
  setpassword      replace an account's password
  deactivate       disable authentication for an account
  activate         re-enable a deactivated account
  delete           remove an account
  list             show all accounts

Flags:
  -d  database DSN
  -w  bcrypt cost
  -c  path to JSON config file`)
}
