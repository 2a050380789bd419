package cli

import (
	"context"
	"fmt"
)

// CreateSuperuser prompts for the account fields and creates a user with the
// staff and superuser flags set. The password is mandatory and entered twice.
func (a *App) CreateSuperuser(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	password, err := GetConfirmedPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.accounts.CreateSuperuser(ctx, email, name, password)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "superuser created", "email", user.Email)
	fmt.Fprintf(a.out, "Created superuser %s\n", user)
	return nil
}
