package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// List prints all accounts with their flags.
func (a *App) List(ctx context.Context) error {

	users, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tACTIVE\tSTAFF\tSUPERUSER")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n", u.Email, u.Name, u.IsActive, u.IsStaff, u.IsSuperuser)
	}
	return w.Flush()
}
