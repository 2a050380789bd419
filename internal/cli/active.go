package cli

import (
	"context"
	"fmt"
)

// Deactivate disables authentication for an account.
func (a *App) Deactivate(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Deactivate(ctx, email); err != nil {
		return err
	}

	a.logger.Info(ctx, "user deactivated", "email", email)
	fmt.Fprintln(a.out, "Account deactivated")
	return nil
}

// Activate re-enables a deactivated account.
func (a *App) Activate(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.Activate(ctx, email); err != nil {
		return err
	}

	a.logger.Info(ctx, "user activated", "email", email)
	fmt.Fprintln(a.out, "Account activated")
	return nil
}
