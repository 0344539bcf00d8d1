// Command cash-report clusters a point dataset by correlation: it finds
// groups of points lying near common hyperplanes and reports them. Datasets
// are ingested from CSV into a local SQLite database, each run's parameters
// and clusters are persisted for later inspection, and results can be
// rendered as text, HTML, or PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/banshee-data/cash.report/internal/cash"
	"github.com/banshee-data/cash.report/internal/config"
	"github.com/banshee-data/cash.report/internal/db"
	"github.com/banshee-data/cash.report/internal/ingest"
	"github.com/banshee-data/cash.report/internal/monitoring"
	"github.com/banshee-data/cash.report/internal/report"
)

var (
	configPath = flag.String("config", config.DefaultConfigPath, "Path to the tuning defaults file")

	dbPath    = flag.String("db", "cash_data.db", "Path to the SQLite database file")
	inputPath = flag.String("input", "", "CSV dataset to ingest before clustering (replaces stored points)")
	splits    = flag.Int("splits", 4, "Angle grid subdivisions per axis")
	eps       = flag.Float64("eps", 2, "Distance tolerance around each candidate hyperplane")
	minPts    = flag.Int("minpts", 3, "Minimum cluster size")
	workers   = flag.Int("workers", 0, "Projection worker count (0 = GOMAXPROCS)")
	maxRounds = flag.Int("max-rounds", 0, "Stop after this many rounds (0 = run to completion)")
	htmlOut   = flag.String("html", "", "Write an interactive scatter chart to this HTML file")
	pngOut    = flag.String("png", "", "Write a static scatter plot to this PNG file")
	quiet     = flag.Bool("quiet", false, "Suppress per-round progress logging")
)

func main() {
	flag.Parse()

	if err := applyTuningDefaults(*configPath); err != nil {
		log.Fatal(err)
	}

	// Subcommand dispatch before the normal run flow.
	if flag.Arg(0) == "migrate" {
		db.RunMigrateCommand(flag.Args()[1:], *dbPath)
		return
	}
	if flag.Arg(0) != "" {
		log.Fatalf("Unknown command: %s", flag.Arg(0))
	}

	if *quiet {
		monitoring.SetLogger(nil)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	database, err := db.NewDB(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	points, names, err := loadPoints(database)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no points to cluster; ingest a dataset with -input")
	}

	cfg := cash.Config{
		Splits:    *splits,
		Eps:       *eps,
		MinPts:    *minPts,
		Workers:   *workers,
		MaxRounds: *maxRounds,
	}
	engine, err := cash.NewEngine(points, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clusters, err := engine.Run(ctx)
	if err != nil {
		// An interrupted run still has its partial results persisted below.
		if ctx.Err() == nil {
			return err
		}
		log.Printf("run interrupted, persisting %d clusters found so far", len(clusters))
	}

	run := &db.Run{
		Splits:     *splits,
		Eps:        *eps,
		MinPts:     *minPts,
		Dims:       len(points[0].Attrs),
		PointCount: len(points),
	}
	if err := database.InsertRun(run, clusters); err != nil {
		return fmt.Errorf("failed to persist run: %w", err)
	}
	log.Printf("run %s: %d clusters over %d rounds", run.RunID, len(clusters), engine.Rounds())

	summary := report.Summarize(points, clusters)
	if err := summary.WriteSummary(os.Stdout); err != nil {
		return err
	}

	if *htmlOut != "" {
		if err := report.WriteScatterHTMLFile(*htmlOut, points, clusters, names); err != nil {
			return fmt.Errorf("failed to write HTML chart: %w", err)
		}
		log.Printf("wrote %s", *htmlOut)
	}
	if *pngOut != "" {
		if err := report.WriteScatterPNG(*pngOut, points, clusters, names); err != nil {
			return fmt.Errorf("failed to write PNG plot: %w", err)
		}
		log.Printf("wrote %s", *pngOut)
	}

	return nil
}

// applyTuningDefaults fills in parameters from the tuning file for any
// flag the caller did not set explicitly. Explicit flags always win.
func applyTuningDefaults(path string) error {
	cfg, err := config.LoadTuningConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid tuning config %s: %w", path, err)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.Splits != nil && !set["splits"] {
		*splits = *cfg.Splits
	}
	if cfg.Eps != nil && !set["eps"] {
		*eps = *cfg.Eps
	}
	if cfg.MinPts != nil && !set["minpts"] {
		*minPts = *cfg.MinPts
	}
	if cfg.Workers != nil && !set["workers"] {
		*workers = *cfg.Workers
	}
	if cfg.MaxRounds != nil && !set["max-rounds"] {
		*maxRounds = *cfg.MaxRounds
	}
	if cfg.DBPath != nil && !set["db"] {
		*dbPath = *cfg.DBPath
	}
	return nil
}

// loadPoints ingests the -input dataset if one was given, replacing the
// stored point set. Otherwise it clusters whatever the database holds.
func loadPoints(database *db.DB) ([]cash.Point, []string, error) {
	if *inputPath == "" {
		points, err := database.ListPoints()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load points: %w", err)
		}
		return points, nil, nil
	}

	ds, err := ingest.ReadFile(*inputPath)
	if err != nil {
		return nil, nil, err
	}
	if err := database.DeleteAllPoints(); err != nil {
		return nil, nil, fmt.Errorf("failed to clear points: %w", err)
	}
	if err := database.InsertPoints(ds.Points); err != nil {
		return nil, nil, fmt.Errorf("failed to store points: %w", err)
	}
	log.Printf("ingested %d points from %s", len(ds.Points), *inputPath)
	return ds.Points, ds.Names, nil
}
