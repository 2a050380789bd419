package cli

import (
	"context"
	"fmt"
)

// SetPassword replaces an account's credential after prompting for the new
// password twice.
func (a *App) SetPassword(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	password, err := GetConfirmedPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.accounts.SetPassword(ctx, email, password); err != nil {
		return err
	}

	a.logger.Info(ctx, "password changed", "email", email)
	fmt.Fprintln(a.out, "Password updated")
	return nil
}
