package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/report"
	"expense-tracker/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	caller auth.Caller
	req    report.Request
	err    error
}

func (f *fakeReports) GenerateMonthlyReport(_ context.Context, caller auth.Caller, req report.Request) (*report.Report, error) {
	f.caller, f.req = caller, req
	if f.err != nil {
		return nil, f.err
	}
	return &report.Report{Period: report.PeriodInfo{YearMonth: req.YearMonth}}, nil
}

func (f *fakeReports) AvailableUsers(context.Context) ([]dto.UserResponse, error) {
	return []dto.UserResponse{{ID: 1, Name: "admin", Role: "ADMIN"}, {ID: 2, Name: "alice", Role: "USER"}}, nil
}

type fakeMigrator struct {
	ups, downs int
}

func (m *fakeMigrator) Up() error   { m.ups++; return nil }
func (m *fakeMigrator) Down() error { m.downs++; return nil }

func newTestCLI(gen *fakeReports, m *fakeMigrator) (*CLI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cli := NewCLI(Options{
		Reports:  func(context.Context) (ReportGenerator, error) { return gen, nil },
		Migrator: m,
		Output:   out,
	})
	return cli, out
}

func TestReportByUserID(t *testing.T) {
	gen := &fakeReports{}
	cli, out := newTestCLI(gen, nil)

	require.NoError(t, cli.ExecuteContext(context.Background(), "report", "--month", "2024-01", "--user-id", "7"))

	assert.Equal(t, auth.RoleAdmin, gen.caller.Role)
	require.NotNil(t, gen.req.UserID)
	assert.Equal(t, int64(7), *gen.req.UserID)
	assert.Equal(t, "2024-01", gen.req.YearMonth)

	var rep report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "2024-01", rep.Period.YearMonth)
}

func TestReportByUsername(t *testing.T) {
	gen := &fakeReports{}
	cli, _ := newTestCLI(gen, nil)

	require.NoError(t, cli.ExecuteContext(context.Background(), "report", "--user", "alice"))
	assert.Equal(t, "alice", gen.caller.Username)
	assert.Nil(t, gen.req.UserID)
	assert.Empty(t, gen.req.YearMonth)
}

func TestReportRequiresTarget(t *testing.T) {
	cli, _ := newTestCLI(&fakeReports{}, nil)
	assert.Error(t, cli.ExecuteContext(context.Background(), "report", "--month", "2024-01"))
}

func TestReportPropagatesValidation(t *testing.T) {
	gen := &fakeReports{err: errors.Join(report.ErrValidation, errors.New("yearMonth"))}
	cli, _ := newTestCLI(gen, nil)

	err := cli.ExecuteContext(context.Background(), "report", "--month", "2024-13", "--user", "alice")
	assert.ErrorIs(t, err, report.ErrValidation)
}

func TestUsersTable(t *testing.T) {
	cli, out := newTestCLI(&fakeReports{}, nil)

	require.NoError(t, cli.ExecuteContext(context.Background(), "users"))
	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "ADMIN")
}

func TestMigrateCommands(t *testing.T) {
	m := &fakeMigrator{}
	cli, out := newTestCLI(&fakeReports{}, m)

	require.NoError(t, cli.ExecuteContext(context.Background(), "migrate", "up"))
	assert.Equal(t, 1, m.ups)
	assert.Contains(t, out.String(), "up to date")

	cli, _ = newTestCLI(&fakeReports{}, m)
	require.NoError(t, cli.ExecuteContext(context.Background(), "migrate", "down"))
	assert.Equal(t, 1, m.downs)
}
