// Package cmd provides the root command and CLI setup for versecheck.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mouse-blink/versecheck/internal/adapter"
	"github.com/mouse-blink/versecheck/internal/config"
	"github.com/mouse-blink/versecheck/internal/controller"
	"github.com/mouse-blink/versecheck/internal/domain"
	"github.com/mouse-blink/versecheck/internal/logging"
	"github.com/spf13/cobra"
)

var configFlag string
var translationFlag string
var apiBaseFlag string
var timeoutFlag time.Duration
var retriesFlag int
var retrySleepFlag time.Duration
var rateLimitSleepFlag time.Duration
var throttleFlag time.Duration
var reportFlag string
var logLevelFlag string
var logFormatFlag string

// newWorkflow assembles the adapters for one invocation.
var newWorkflow = buildWorkflow

// isTTY decides between the live scan view and plain line output.
var isTTY = controller.IsTTY

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Versecheck compares a local King James Bible corpus against the
reference text served by bible-api.com, one chapter at a time.

The corpus root holds one folder per canonical book, each containing
chapter files named 01.json (or 1.json). Every chapter is normalized and
compared verse by verse; the first differing verse of each mismatched
chapter is written to a CSV report.

Settings come from flags, VERSECHECK_* environment variables, an optional
YAML file (--config or VERSECHECK_CONFIG) and built-in defaults, in that order.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "versecheck [root]",
		Short:        "Validate a local KJV corpus against a reference API",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runCheck,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "path to a YAML config file (default $"+config.PathEnv+")")
	flags.StringVarP(&translationFlag, "translation", "t", adapter.DefaultTranslation, "translation code requested from the API")
	flags.StringVar(&apiBaseFlag, "api-base", adapter.DefaultReferenceURL, "reference API base URL")
	flags.DurationVar(&timeoutFlag, "timeout", 15*time.Second, "per-request timeout")
	flags.IntVar(&retriesFlag, "retries", 3, "fetch attempts per chapter")
	flags.DurationVar(&retrySleepFlag, "retry-sleep", 1500*time.Millisecond, "pause between failed attempts")
	flags.DurationVar(&rateLimitSleepFlag, "rate-limit-sleep", 2*time.Second, "pause after an HTTP 429")
	flags.DurationVar(&throttleFlag, "throttle", 250*time.Millisecond, "pause after each successful fetch")
	flags.StringVarP(&reportFlag, "report", "r", "bible_mismatches.csv", "mismatch report path, relative to the corpus root unless absolute")
	flags.StringVar(&logLevelFlag, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&logFormatFlag, "log-format", "text", "log format: text or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadSettings layers explicitly set flags and the positional root over
// the file and environment configuration.
func loadSettings(cmd *cobra.Command, root []string) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	if len(root) > 0 {
		cfg.Corpus.Root = root[0]
	}

	flags := cmd.Flags()
	if flags.Changed("translation") {
		cfg.Reference.Translation = translationFlag
	}

	if flags.Changed("api-base") {
		cfg.Reference.BaseURL = apiBaseFlag
	}

	if flags.Changed("timeout") {
		cfg.Reference.Timeout = timeoutFlag
	}

	if flags.Changed("retries") {
		cfg.Reference.Attempts = retriesFlag
	}

	if flags.Changed("retry-sleep") {
		cfg.Reference.RetrySleep = retrySleepFlag
	}

	if flags.Changed("rate-limit-sleep") {
		cfg.Reference.RateLimitSleep = rateLimitSleepFlag
	}

	if flags.Changed("throttle") {
		cfg.Reference.Throttle = throttleFlag
	}

	if flags.Changed("report") {
		cfg.Report.Path = reportFlag
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = logLevelFlag
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = logFormatFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logger, _ := logging.WithRunID(logging.New(w, level, logging.Format(cfg.Log.Format)))

	return logger, nil
}

// heldLog buffers log records while the live view owns the terminal.
type heldLog struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *heldLog) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.buf.Write(p)
}

func (h *heldLog) flushTo(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, _ = h.buf.WriteTo(w)
}

func buildWorkflow(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) domain.Workflow {
	ui := controller.NewUI(cmd, isTTY(cmd.OutOrStdout()))
	corpus := adapter.NewLocalCorpusFSAdapter()

	retry := adapter.DefaultRetryPolicy()
	retry.MaxAttempts = cfg.Reference.Attempts
	retry.Delay = cfg.Reference.RetrySleep
	retry.RateLimitDelay = cfg.Reference.RateLimitSleep
	retry.MaxRateLimited = cfg.Reference.MaxRateLimited

	reference := adapter.NewReferenceClient(adapter.ReferenceOptions{
		BaseURL:     cfg.Reference.BaseURL,
		Translation: cfg.Reference.Translation,
		Timeout:     cfg.Reference.Timeout,
		Retry:       retry,
		Throttle:    cfg.Reference.Throttle,
	}, logger)

	return domain.NewWorkflow(
		corpus,
		adapter.NewReportStore(),
		ui,
		domain.NewOrchestrator(corpus, reference, logger),
		logger,
	)
}

// prepare resolves settings, the logger and the workflow for a command.
// On a terminal, log records are held until the returned flush runs so
// they do not tear the live view; callers defer it.
func prepare(cmd *cobra.Command, root []string) (*config.Config, domain.Workflow, func(), error) {
	cfg, err := loadSettings(cmd, root)
	if err != nil {
		return nil, nil, nil, err
	}

	var logOut io.Writer = cmd.ErrOrStderr()

	flush := func() {}

	if isTTY(cmd.OutOrStdout()) {
		held := &heldLog{}
		logOut = held
		flush = func() { held.flushTo(cmd.ErrOrStderr()) }
	}

	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, newWorkflow(cmd, cfg, logger), flush, nil
}
