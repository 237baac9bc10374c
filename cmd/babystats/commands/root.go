package commands

import (
	"fmt"
	"os"

	"babystats/internal/config"
	"babystats/internal/events"
	"babystats/internal/logging"
	"babystats/internal/report"
	"babystats/internal/stats"
	"babystats/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose    bool
	windowDays int
	charts     bool

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "babystats [file ...]",
	Short: "babystats turns an infant-care event log into a rolling-average report",
	Long: `Reads a JSONL log of care events (diapers, feedings, pumping, tummy time,
sleep) from the given files or stdin, folds them into per-day totals and
prints one summary block per 7-day rolling window of daily averages.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("babystats starting")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func run(args []string) error {
	window := cfg.WindowDays
	if windowDays > 0 {
		window = windowDays
	}

	var evs []events.Event
	var err error
	if len(args) == 0 {
		evs, err = events.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	} else {
		evs, err = events.LoadFiles(args)
		if err != nil {
			return err
		}
	}

	if err := events.Sort(evs); err != nil {
		return err
	}

	agg := stats.NewAggregator()
	for _, e := range evs {
		agg.Observe(e)
	}
	days := agg.Days()

	means := stats.Rolling(days, window)
	log.Info().
		Int("events", len(evs)).
		Int("days", len(days)).
		Int("window", window).
		Int("reports", len(means)).
		Msg("Aggregation complete")

	if err := report.Write(os.Stdout, means); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if charts || cfg.EnableMermaidCharts {
		for _, chart := range []string{
			visuals.GenerateFeedingChart(means),
			visuals.GenerateSleepChart(means),
		} {
			if chart == "" {
				continue
			}
			if _, err := fmt.Fprintf(os.Stdout, "\n%s\n", chart); err != nil {
				return fmt.Errorf("writing chart: %w", err)
			}
		}
	}

	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().IntVarP(&windowDays, "window", "w", 0, "rolling window length in days (default 7, or WINDOW_DAYS)")
	rootCmd.Flags().BoolVar(&charts, "charts", false, "emit Mermaid charts after the report")
}
