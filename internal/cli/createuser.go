package cli

import (
	"context"
	"fmt"
)

// CreateUser prompts for the account fields and creates a regular user.
// An empty password is allowed and leaves the account without a usable
// credential.
func (a *App) CreateUser(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password (leave empty for none)", a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.CreateUser(ctx, email, name, password)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "user created", "email", user.Email)
	fmt.Fprintf(a.out, "Created user %s\n", user)
	return nil
}
