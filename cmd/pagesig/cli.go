package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagesig/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze article URLs and score them against a keyword"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Article URLs to analyze"`
	Keyword     string   `short:"k" help:"Keyword for relevancy scoring (relevancy is absent without it)"`
	Render      bool     `help:"Render pages in a headless browser before analysis"`
	Readability bool     `help:"Strip boilerplate with readability before locating content"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" help:"Per-domain requests per second (0 disables rate limiting)"`
	ByDomain    bool     `name:"by-domain" help:"Also report mean scores grouped by domain"`
	Config      string   `type:"path" help:"YAML file with metric weights"`
	JSON        bool     `help:"Emit the batch result as JSON"`
	Verbose     bool     `short:"v" help:"Enable debug logging to stderr"`

	WRelevancy *float64 `name:"w-relevancy" help:"Weight for keyword relevancy"`
	WWords     *float64 `name:"w-words" help:"Weight for word count"`
	WLinks     *float64 `name:"w-links" help:"Weight for outbound links"`
	WSections  *float64 `name:"w-sections" help:"Weight for section count"`
	WAuthor    *float64 `name:"w-author" help:"Weight for author presence"`
}
