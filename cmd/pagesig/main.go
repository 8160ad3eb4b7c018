package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesig"
	"github.com/fwojciec/pagesig/batch"
	pggoquery "github.com/fwojciec/pagesig/goquery"
	pghttp "github.com/fwojciec/pagesig/http"
	"github.com/fwojciec/pagesig/ratelimit"
	"github.com/fwojciec/pagesig/readability"
	"github.com/fwojciec/pagesig/rod"
	pgslog "github.com/fwojciec/pagesig/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesig"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesig --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Analyze.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher, err := m.buildFetcher(&cli.Analyze, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps.Runner = &batch.Runner{
		Fetcher:     fetcher,
		Analyzer:    m.buildAnalyzer(&cli.Analyze, logger),
		Concurrency: cli.Analyze.Concurrency,
	}

	return kongCtx.Run(deps)
}

// buildFetcher selects the transport (HTTP vs headless browser) and
// applies the rate-limiting and logging decorators per flags.
func (m *Main) buildFetcher(cmd *AnalyzeCmd, logger *slog.Logger) (pagesig.Fetcher, error) {
	var fetcher pagesig.Fetcher
	if cmd.Render {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = pghttp.NewFetcher(pghttp.WithRetryDelays(pghttp.DefaultRetryDelays()))
	}

	if cmd.RPS > 0 {
		fetcher = ratelimit.NewFetcher(fetcher, cmd.RPS)
	}
	if cmd.Verbose {
		fetcher = pgslog.NewFetcher(fetcher, logger)
	}
	return fetcher, nil
}

// buildAnalyzer assembles the extraction pipeline per flags.
func (m *Main) buildAnalyzer(cmd *AnalyzeCmd, logger *slog.Logger) pagesig.Analyzer {
	var opts []pggoquery.Option
	if cmd.Readability {
		opts = append(opts, pggoquery.WithExtractor(readability.NewExtractor()))
	}

	var analyzer pagesig.Analyzer = pggoquery.NewAnalyzer(opts...)
	if cmd.Verbose {
		analyzer = pgslog.NewAnalyzer(analyzer, logger)
	}
	return analyzer
}
