// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/config"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/dates"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/gateway"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/report"
	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/usecase"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregates pull request activity per developer and writes an xlsx report",
	Long: `Fetches every pull request of the configured repository, selects those whose
creation, merge or close instant falls inside the date range, and writes one
summary row per developer to an xlsx file.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Flags override the environment.
		if v, _ := cmd.Flags().GetString("repo"); v != "" {
			owner, repo, ok := strings.Cut(v, "/")
			if !ok || owner == "" || repo == "" {
				fmt.Fprintf(os.Stderr, "Invalid --repo value %q: expected owner/name.\n", v)
				os.Exit(1)
			}
			cfg.Owner, cfg.Repo = owner, repo
		}
		if v, _ := cmd.Flags().GetString("from"); v != "" {
			cfg.StartDate = v
		}
		if v, _ := cmd.Flags().GetString("to"); v != "" {
			cfg.EndDate = v
		}
		if v, _ := cmd.Flags().GetBool("debug"); v {
			cfg.DebugDump = true
		}

		dateRange, err := resolveDateRange(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, cfg.PerPage, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		if err := githubGateway.ProbeRepository(ctx, cfg.Owner, cfg.Repo); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Fetching PRs for %s/%s ...\n", cfg.Owner, cfg.Repo)
		prs, raw, err := githubGateway.FetchPullRequests(ctx, cfg.Owner, cfg.Repo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Fetched: %d PRs\n", len(prs))

		summarizer := usecase.NewSummarizer(logger)
		rows := summarizer.Summarize(prs, dateRange, cfg.Owner, cfg.Repo)
		if leadTimes, ok := summarizer.MergeLeadTimes(prs, dateRange); ok {
			logger.Printf("Merge lead time over %d merges: median %.1fh, mean %.1fh",
				leadTimes.Count, leadTimes.MedianHours, leadTimes.MeanHours)
		}

		writer, err := report.NewWriter(cfg.OutDir, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Fetch and aggregation are done; the report and the optional debug
		// artifacts can be written concurrently.
		var reportPath string
		eg, _ := errgroup.WithContext(ctx)
		eg.Go(func() error {
			path, err := writer.WriteSummary(rows, dateRange, cfg.Repo)
			reportPath = path
			return err
		})
		if cfg.DebugDump {
			eg.Go(func() error {
				_, err := writer.WriteRawDump(raw, cfg.Repo)
				return err
			})
			eg.Go(func() error {
				_, err := writer.WriteDebugTable(prs, cfg.Repo)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved: %s (%d developers)\n", reportPath, len(rows))
	},
}

// resolveDateRange turns the configured date strings into an inclusive
// full-day range. Missing dates are prompted for on a terminal; otherwise
// only the missing endpoint defaults, to the last-24h window (start: now
// minus 24h, end: now). A configured endpoint is always honored.
func resolveDateRange(cfg config.Config) (domain.DateRange, error) {
	start, end := cfg.StartDate, cfg.EndDate
	if (start == "" || end == "") && config.Interactive() {
		start, end = promptDates(start, end)
	}

	now := time.Now().UTC()
	startInstant := now.Add(-24 * time.Hour)
	if start != "" {
		t, err := dates.Parse(start)
		if err != nil {
			return domain.DateRange{}, err
		}
		startInstant = t
	}
	endInstant := now
	if end != "" {
		t, err := dates.Parse(end)
		if err != nil {
			return domain.DateRange{}, err
		}
		endInstant = t
	}
	return domain.NewDateRange(dates.FloorDay(startInstant), dates.CeilDay(endInstant))
}

// promptDates asks for whichever endpoints are still missing.
func promptDates(start, end string) (string, string) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Enter start and end dates (PRs created, merged or closed in this range are considered).")
	if start == "" {
		fmt.Print("Start date: ")
		line, _ := reader.ReadString('\n')
		start = strings.TrimSpace(line)
	}
	if end == "" {
		fmt.Print("End date:   ")
		line, _ := reader.ReadString('\n')
		end = strings.TrimSpace(line)
	}
	return start, end
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().String("repo", "", "Target repository as owner/name (overrides the environment)")
	summaryCmd.Flags().String("from", "", "Start date (e.g. 2025-09-01 or Sep 1 2025)")
	summaryCmd.Flags().String("to", "", "End date (e.g. 2025-09-05 or Sep 5 2025)")
	summaryCmd.Flags().Bool("debug", false, "Also write the raw PR payload dump and a flattened per-PR table")
}
