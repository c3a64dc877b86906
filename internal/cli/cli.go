package cli

import (
	"context"
	"io"
	"os"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/report"
	"expense-tracker/pkg/auth"

	"github.com/spf13/cobra"
)

// ReportGenerator is implemented by service.ReportService.
type ReportGenerator interface {
	GenerateMonthlyReport(ctx context.Context, caller auth.Caller, req report.Request) (*report.Report, error)
	AvailableUsers(ctx context.Context) ([]dto.UserResponse, error)
}

// Migrator applies and reverts schema migrations.
type Migrator interface {
	Up() error
	Down() error
}

// CLI is the operator command line for the expense database.
type CLI struct {
	reports  func(ctx context.Context) (ReportGenerator, error)
	migrator Migrator
	out      io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI. Reports is called lazily so
// that commands without database access never open a connection.
type Options struct {
	Reports  func(ctx context.Context) (ReportGenerator, error)
	Migrator Migrator
	Output   io.Writer
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reports:  opts.Reports,
		migrator: opts.Migrator,
		out:      opts.Output,
	}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "expensectl",
		Short:         "Operate the expense tracker database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)

	cmd.AddCommand(newMigrateCmd(cli.migrator))
	cmd.AddCommand(newReportCmd(cli.reports, cli.out))
	cmd.AddCommand(newUsersCmd(cli.reports, cli.out))

	return cmd
}
