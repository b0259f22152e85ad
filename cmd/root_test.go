package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mouse-blink/versecheck/internal/config"
	"github.com/mouse-blink/versecheck/internal/domain"
	domainmocks "github.com/mouse-blink/versecheck/internal/domain/mocks"
	m "github.com/mouse-blink/versecheck/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capturedSettings records what newWorkflow was called with.
type capturedSettings struct {
	cfg    *config.Config
	logger *slog.Logger
}

// useMockWorkflow swaps the workflow factory for one returning wf.
func useMockWorkflow(t *testing.T, wf domain.Workflow) *capturedSettings {
	t.Helper()

	// Keep the caller's environment out of config loading.
	for _, name := range []string{
		config.PathEnv, "VERSECHECK_ROOT", "VERSECHECK_API_BASE", "VERSECHECK_TRANSLATION",
		"VERSECHECK_TIMEOUT", "VERSECHECK_RETRIES", "VERSECHECK_RETRY_SLEEP", "VERSECHECK_RATE_LIMIT_SLEEP",
		"VERSECHECK_MAX_RATE_LIMITED", "VERSECHECK_THROTTLE", "VERSECHECK_REPORT",
		"VERSECHECK_LOG_LEVEL", "VERSECHECK_LOG_FORMAT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	captured := &capturedSettings{}

	original := newWorkflow
	newWorkflow = func(_ *cobra.Command, cfg *config.Config, logger *slog.Logger) domain.Workflow {
		captured.cfg = cfg
		captured.logger = logger

		return wf
	}

	t.Cleanup(func() { newWorkflow = original })

	return captured
}

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd(), newListCmd(), newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_DefaultsCheckCurrentDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Check(mock.Anything, domain.CheckArgs{
		Root:   ".",
		Report: "bible_mismatches.csv",
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	require.NotNil(t, captured.cfg)
	assert.Equal(t, "kjv", captured.cfg.Reference.Translation)
	assert.Equal(t, "https://bible-api.com", captured.cfg.Reference.BaseURL)
	assert.Equal(t, 3, captured.cfg.Reference.Attempts)
	assert.Equal(t, 1500*time.Millisecond, captured.cfg.Reference.RetrySleep)
	assert.Equal(t, 2*time.Second, captured.cfg.Reference.RateLimitSleep)
	assert.Equal(t, 250*time.Millisecond, captured.cfg.Reference.Throttle)
	assert.NotNil(t, captured.logger)
}

func TestRootCmd_PositionalRootAnchorsReport(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Check(mock.Anything, domain.CheckArgs{
		Root:   "/data/kjv",
		Report: m.Path(filepath.Join("/data/kjv", "bible_mismatches.csv")),
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"/data/kjv"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)

	t.Setenv("VERSECHECK_TRANSLATION", "web")
	t.Setenv("VERSECHECK_RETRIES", "7")

	mockWorkflow.EXPECT().Check(mock.Anything, domain.CheckArgs{
		Root:   "bible",
		Report: "/tmp/out.csv",
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{
		"check", "bible",
		"--translation", "asv",
		"--api-base", "http://localhost:9000",
		"--timeout", "3s",
		"--retry-sleep", "10ms",
		"--rate-limit-sleep", "20ms",
		"--throttle", "0s",
		"--report", "/tmp/out.csv",
		"--log-format", "json",
	})

	require.NoError(t, cmd.Execute())

	ref := captured.cfg.Reference
	assert.Equal(t, "asv", ref.Translation)
	assert.Equal(t, 7, ref.Attempts, "unset flag keeps the environment value")
	assert.Equal(t, "http://localhost:9000", ref.BaseURL)
	assert.Equal(t, 3*time.Second, ref.Timeout)
	assert.Equal(t, 10*time.Millisecond, ref.RetrySleep)
	assert.Equal(t, 20*time.Millisecond, ref.RateLimitSleep)
	assert.Equal(t, time.Duration(0), ref.Throttle)
	assert.Equal(t, "json", captured.cfg.Log.Format)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)

	path := filepath.Join(t.TempDir(), "versecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
corpus:
  root: /srv/bible
reference:
  translation: kjv
  attempts: 5
report:
  path: reports/diff.csv
`), 0o600))

	mockWorkflow.EXPECT().Check(mock.Anything, domain.CheckArgs{
		Root:   "/srv/bible",
		Report: m.Path(filepath.Join("/srv/bible", "reports/diff.csv")),
	}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"--config", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 5, captured.cfg.Reference.Attempts)
}

func TestRootCmd_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero retries", args: []string{"--retries", "0"}},
		{name: "bad log level", args: []string{"--log-level", "loud"}},
		{name: "bad api base", args: []string{"--api-base", "::not a url"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/versecheck.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			useMockWorkflow(t, mockWorkflow)

			cmd := newTestRootCmd()
			cmd.SetArgs(tt.args)

			require.Error(t, cmd.Execute())
		})
	}
}

func TestRootCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrNoBooks)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"/empty"})

	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrNoBooks)
}

func TestRootCmd_PassesCommandContext(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	type ctxKey struct{}

	ctx := context.WithValue(context.Background(), ctxKey{}, "run")

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(got context.Context) bool {
		return got.Value(ctxKey{}) == "run"
	}), mock.Anything).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useMockWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"check", "a", "b"})

	require.Error(t, cmd.Execute())
}

// useTTY pretends stdout is a terminal for the duration of the test.
func useTTY(t *testing.T, tty bool) {
	t.Helper()

	original := isTTY
	isTTY = func(io.Writer) bool { return tty }

	t.Cleanup(func() { isTTY = original })
}

func TestRootCmd_HoldsLogsWhileLiveViewRuns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)
	useTTY(t, true)

	stderr := &bytes.Buffer{}

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.CheckArgs) {
			captured.logger.Warn("reference fetch retrying", slog.String("chapter", "Genesis 1"))
			assert.Empty(t, stderr.String(), "log reached the terminal during the scan")
		}).
		Return(nil)

	cmd := newTestRootCmd()
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "reference fetch retrying")
	assert.Contains(t, stderr.String(), "Genesis 1")
}

func TestRootCmd_LogsStreamWithoutTerminal(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)
	useTTY(t, false)

	stderr := &bytes.Buffer{}

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.CheckArgs) {
			captured.logger.Warn("reference fetch retrying")
			assert.Contains(t, stderr.String(), "reference fetch retrying")
		}).
		Return(nil)

	cmd := newTestRootCmd()
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"check"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlushesHeldLogsOnError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	captured := useMockWorkflow(t, mockWorkflow)
	useTTY(t, true)

	stderr := &bytes.Buffer{}

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.CheckArgs) {
			captured.logger.Error("reference fetch exhausted")
		}).
		Return(domain.ErrNoBooks)

	cmd := newTestRootCmd()
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"check"})

	require.ErrorIs(t, cmd.Execute(), domain.ErrNoBooks)
	assert.Contains(t, stderr.String(), "reference fetch exhausted")
}

func TestBuildWorkflow(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})

	wf := buildWorkflow(cmd, &config.Config{
		Corpus: config.CorpusConfig{Root: t.TempDir()},
		Report: config.ReportConfig{Path: "r.csv"},
	}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NotNil(t, wf)

	err := wf.List(domain.ListArgs{Root: m.Path(t.TempDir())})
	require.True(t, errors.Is(err, domain.ErrNoBooks))
}
