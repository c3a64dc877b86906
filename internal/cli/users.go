package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUsersCmd(reports func(ctx context.Context) (ReportGenerator, error), out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users reports can be generated for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := reports(cmd.Context())
			if err != nil {
				return err
			}
			users, err := gen.AvailableUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROLE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Name, u.Role)
			}
			return w.Flush()
		},
	}
}
