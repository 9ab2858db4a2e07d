package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"agrifleet/internal/generator"
	"agrifleet/internal/observability/metrics"
	"agrifleet/internal/snapshot"
	"agrifleet/internal/taxonomy"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	root := &cobra.Command{
		Use:           "agrifleet",
		Short:         "Synthetic agricultural IoT fleet and telemetry generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(logger), newExportCmd(logger), newStatsCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Fatalf("error: %v", err)
	}
}

func newGenerateCmd(logger *log.Logger) *cobra.Command {
	var (
		out          string
		configPath   string
		seed         int64
		days         int
		simCards     int
		ifMissing    bool
		refreshEvery time.Duration
		metricsAddr  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fleet snapshot and persist it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := generator.LoadConfigPath(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("out") {
				cfg.OutputDir = out
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("days") {
				cfg.HistoryDays = days
			}
			if cmd.Flags().Changed("sim-cards") {
				cfg.SimCards = simCards
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			metrics.Init()
			runner, err := generator.NewRunner(taxonomy.Default(), cfg, snapshot.NewFileStore(), logger)
			if err != nil {
				return err
			}

			if ifMissing {
				snap, err := runner.LoadOrRun(cfg.OutputDir)
				if err != nil {
					return err
				}
				logger.Printf("snapshot %s ready: devices=%d points=%d", snap.Stats.GenerationID, snap.Stats.TotalDevices, snap.Stats.DataPoints)
				return nil
			}

			if refreshEvery <= 0 {
				_, err := runner.Run(cfg.OutputDir)
				return err
			}
			return refreshLoop(runner, cfg.OutputDir, refreshEvery, metricsAddr, logger)
		},
	}

	cmd.Flags().StringVar(&out, "out", "data", "snapshot output directory")
	cmd.Flags().StringVar(&configPath, "config", os.Getenv("AGRIFLEET_CONFIG"), "yaml config file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 derives one from the clock)")
	cmd.Flags().IntVar(&days, "days", 7, "historical window in days")
	cmd.Flags().IntVar(&simCards, "sim-cards", 25, "number of SIM card records")
	cmd.Flags().BoolVar(&ifMissing, "if-missing", false, "reuse an existing snapshot, generate only when absent")
	cmd.Flags().DurationVar(&refreshEvery, "refresh-every", 0, "regenerate periodically instead of once")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "prometheus listen address for the periodic mode")
	return cmd
}

// refreshLoop keeps a cached snapshot fresh: each tick builds a full
// replacement and publishes it with an atomic swap before saving, so readers
// of the cache never see a partial rebuild.
func refreshLoop(runner *generator.Runner, target string, every time.Duration, metricsAddr string, logger *log.Logger) error {
	cache := snapshot.NewCache(runner.Generate)
	store := snapshot.NewFileStore()

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Printf("metrics listening on %s", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Printf("metrics listener error: %v", err)
			}
		}()
	}

	refresh := func() error {
		snap, err := cache.Refresh()
		if err != nil {
			return err
		}
		return store.Save(snap, target)
	}
	if err := refresh(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := refresh(); err != nil {
				logger.Printf("refresh error: %v", err)
			}
		case <-stop:
			logger.Printf("shutting down")
			return nil
		}
	}
}

func newExportCmd(logger *log.Logger) *cobra.Command {
	var (
		snapshotDir string
		out         string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a fleet report from a stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(snapshotDir)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "xlsx":
				data, err = snapshot.BuildFleetXLSX(snap)
			case "pdf":
				data, err = snapshot.BuildFleetPDF(snap)
			default:
				return fmt.Errorf("unknown format %q (want xlsx or pdf)", format)
			}
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Printf("report written to %s (%d bytes)", out, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotDir, "snapshot", "data", "snapshot directory")
	cmd.Flags().StringVar(&out, "out", "fleet-report.xlsx", "output file")
	cmd.Flags().StringVar(&format, "format", "xlsx", "report format: xlsx or pdf")
	return cmd
}

func newStatsCmd(logger *log.Logger) *cobra.Command {
	var snapshotDir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the summary stats of a stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(snapshotDir)
			if err != nil {
				return err
			}
			s := snap.Stats
			logger.Printf("generation %s at %s", s.GenerationID, s.GeneratedAt.Format(time.RFC3339))
			logger.Printf("devices: %d total, %d online, %d types", s.TotalDevices, s.OnlineDevices, s.DeviceTypes)
			logger.Printf("historical points: %d", s.DataPoints)
			logger.Printf("sim cards: %d", s.SimCards)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotDir, "snapshot", "data", "snapshot directory")
	return cmd
}

func loadSnapshot(dir string) (*snapshot.Snapshot, error) {
	snap, err := snapshot.NewFileStore().Load(dir)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil, fmt.Errorf("no snapshot at %s, run `agrifleet generate` first: %w", dir, err)
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}
