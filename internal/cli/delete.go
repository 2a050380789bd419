package cli

import (
	"context"
	"fmt"
	"strings"
)

// Delete removes an account after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %s? (yes/no)", email), a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}

	if err := a.accounts.Delete(ctx, email); err != nil {
		return err
	}

	a.logger.Info(ctx, "user deleted", "email", email)
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
