package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cbodonnell/blockfall/pkg/config"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/fatih/color"
)

const usage = `usage: scores [-db url] [-log-level level] <command> [flags]

commands:
  list  print the top scores
  add   save a score
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(context.Background(), os.Args[1:], color.Output); err != nil {
		if !errors.Is(err, errUsage) {
			color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scores", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }
	db := fs.String("db", "", "leaderboard url (default $BLOCKFALL_DATABASE_URL or sqlite://blockfall.db)")
	logLevel := fs.String("log-level", "", "Log level (default $BLOCKFALL_LOG_LEVEL or info)")
	timeout := fs.Duration("timeout", 10*time.Second, "timeout for leaderboard calls")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	parsedLogLevel, err := config.LogLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	lb, err := leaderboard.Open(ctx, config.DatabaseURL(*db))
	if err != nil {
		return fmt.Errorf("failed to open leaderboard: %v", err)
	}
	defer lb.Close(ctx)

	command, rest := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "list":
		return runList(ctx, lb, rest, out)
	case "add":
		return runAdd(ctx, lb, rest, out)
	default:
		fmt.Fprintf(out, "unknown command %q\n\n", command)
		fs.Usage()
		return errUsage
	}
}

func runList(ctx context.Context, lb leaderboard.Leaderboard, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(out)
	limit := fs.Int("limit", leaderboard.DefaultLimit, "number of scores to print")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	entries, err := lb.TopScores(ctx, *limit)
	if err != nil {
		return fmt.Errorf("failed to list scores: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores yet")
		return nil
	}

	rank := color.New(color.FgYellow, color.Bold).SprintfFunc()
	name := color.New(color.FgCyan).SprintfFunc()
	for i, e := range entries {
		fmt.Fprintf(out, "%s %s %8d  %s\n",
			rank("%3d.", i+1),
			name("%-*s", leaderboard.MaxNameLength, e.Name),
			e.Score,
			e.CreatedAt.Local().Format(time.DateTime),
		)
	}
	return nil
}

func runAdd(ctx context.Context, lb leaderboard.Leaderboard, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(out)
	name := fs.String("name", "", "player name")
	score := fs.Int("score", 0, "score")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if err := lb.AddScore(ctx, *name, *score); err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}
	fmt.Fprintf(out, "%s %s %d\n", color.GreenString("saved"), *name, *score)
	return nil
}
