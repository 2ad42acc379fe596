package cmd

import (
	"fmt"
	"os"
	"time"

	"github-activity/internal/config"
	"github-activity/internal/digest"
	"github-activity/internal/github"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"
)

var (
	limitFlag int
	sinceFlag string
)

var rootCmd = &cobra.Command{
	Use:     "github-activity <username>",
	Short:   "Show a digest of a GitHub user's recent public activity",
	Example: "  github-activity octocat\n  github-activity octocat --limit 5 --since yesterday",
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	// Diagnostics go to stderr so the digest on stdout stays pipeable.
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)

	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum number of events to show (default: configured bound)")
	rootCmd.Flags().StringVar(&sinceFlag, "since", "", `only show events since this date, e.g. "2026-08-20", "yesterday", "2 weeks ago"`)
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	// Load .env file without overriding existing env vars.
	// Precedence: real env vars > .env file values.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	limit := cfg.MaxEvents
	if limitFlag > 0 {
		limit = limitFlag
	}

	var cutoff time.Time
	if sinceFlag != "" {
		cutoff, err = parseSince(sinceFlag, time.Now())
		if err != nil {
			return err
		}
	}

	username := args[0]

	client, err := github.NewClient(cfg)
	if err != nil {
		return err
	}

	events, err := client.FetchUserEvents(cmd.Context(), username)
	if err != nil {
		return err
	}

	if !cutoff.IsZero() {
		events = digest.Since(events, cutoff)
	}

	out := cmd.OutOrStdout()
	lines := digest.Format(events, limit)
	fmt.Fprintf(out, "Recent activity for %s:\n\n", username)
	if len(lines) == 0 {
		fmt.Fprintln(out, "No recent public activity found.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(out, "- %s\n", line)
	}
	return nil
}

const dateFormat = "2006-01-02"

// parseSince resolves a --since value to the start of the resolved
// day. Exact dates (YYYY-MM-DD) are tried first; anything else is
// interpreted as natural language relative to ref via go-naturaldate
// (e.g. "yesterday", "2 weeks ago").
func parseSince(s string, ref time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(dateFormat, s, ref.Location()); err == nil {
		return t, nil
	}
	t, err := naturaldate.Parse(s, ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since value %q: %w", s, err)
	}
	return startOfDay(t), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
