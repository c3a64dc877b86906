package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"expense-tracker/internal/report"
	"expense-tracker/pkg/auth"

	"github.com/spf13/cobra"
)

// operatorName identifies the CLI in report logs when it reads by user id.
const operatorName = "expensectl"

type ReportCmd struct {
	month    string
	userID   int64
	username string
	timeout  time.Duration
	reports  func(ctx context.Context) (ReportGenerator, error)
	out      io.Writer
}

func newReportCmd(reports func(ctx context.Context) (ReportGenerator, error), out io.Writer) *cobra.Command {
	rc := &ReportCmd{reports: reports, out: out}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a monthly spending report as JSON",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.month, "month", "", "Month as YYYY-MM (default current UTC month)")
	cmd.Flags().Int64Var(&rc.userID, "user-id", 0, "Report on the user with this id")
	cmd.Flags().StringVar(&rc.username, "user", "", "Report on the user with this name")
	cmd.Flags().DurationVar(&rc.timeout, "timeout", 30*time.Second, "Give up after this long")
	cmd.MarkFlagsMutuallyExclusive("user-id", "user")
	cmd.MarkFlagsOneRequired("user-id", "user")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), rc.timeout)
	defer cancel()

	gen, err := rc.reports(ctx)
	if err != nil {
		return err
	}

	// The operator acts as an administrator; --user reads through the
	// same self scope a logged in user would get.
	caller := auth.Caller{Username: operatorName, Role: auth.RoleAdmin}
	req := report.Request{YearMonth: rc.month}
	if rc.username != "" {
		caller.Username = rc.username
	} else {
		id := rc.userID
		req.UserID = &id
	}

	rep, err := gen.GenerateMonthlyReport(ctx, caller, req)
	if err != nil {
		if errors.Is(err, report.ErrValidation) {
			return fmt.Errorf("bad flags: %w", err)
		}
		return err
	}

	enc := json.NewEncoder(rc.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
