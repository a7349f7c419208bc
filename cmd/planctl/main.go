// planctl runs the restock planning engine offline, from a JSON feed
// snapshot file or straight off the feed mirror database. Useful for
// replaying archived runs and for eyeballing a plan before the dashboard
// shows it to a dealer.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/prasetyadi/dealer-restock/internal/config"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
	"github.com/prasetyadi/dealer-restock/internal/planner"
	"github.com/prasetyadi/dealer-restock/internal/repository/postgres"
	"github.com/prasetyadi/dealer-restock/internal/storage"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "planctl",
		Usage: "Run the dealer restock planning engine offline",
		Commands: []*cli.Command{
			{
				Name:   "plan",
				Usage:  "Compute the full restock plan for one dealer",
				Flags:  planFlags(),
				Action: runPlan,
			},
			{
				Name:   "checkpoint",
				Usage:  "Compute only the stock-min checkpoint for one dealer",
				Flags:  planFlags(),
				Action: runCheckpoint,
			},
			{
				Name:  "runs",
				Usage: "List archived planning runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dealer",
						Usage:   "Only list runs for this dealer",
						EnvVars: []string{"RESTOCK_DEALER"},
					},
				},
				Action: runList,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func planFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "dealer",
			Usage:    "Dealer identifier to plan for",
			Required: true,
			EnvVars:  []string{"RESTOCK_DEALER"},
		},
		&cli.StringFlag{
			Name:    "snapshot",
			Usage:   "Path to a JSON feed snapshot file (as archived by the server)",
			EnvVars: []string{"RESTOCK_SNAPSHOT"},
		},
		&cli.StringFlag{
			Name:    "db-url",
			Usage:   "Feed mirror database URL (used when no snapshot file is given)",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:    "as-of",
			Usage:   "Reference date for the run (DD/MM/YYYY or ISO), defaults to today",
			EnvVars: []string{"RESTOCK_AS_OF"},
		},
	}
}

func runPlan(c *cli.Context) error {
	snap, now, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result := planner.NewEngine(now).Plan(*snap)
	return printJSON(result)
}

func runCheckpoint(c *cli.Context) error {
	snap, now, err := loadSnapshot(c)
	if err != nil {
		return err
	}

	result := planner.NewEngine(now).Plan(*snap)
	return printJSON(result.Checkpoint)
}

func runList(c *cli.Context) error {
	cfg := config.Load()
	if !cfg.Archive.Enabled {
		return fmt.Errorf("run archive is not enabled (set ARCHIVE_ENABLED)")
	}

	client, err := storage.NewArchiveClient(cfg.Archive)
	if err != nil {
		return err
	}

	objects, err := client.ListObjects(context.Background(), storage.RunPrefix(c.String("dealer")))
	if err != nil {
		return err
	}
	for _, object := range objects {
		fmt.Printf("%s\t%d\n", object.Key, object.Size)
	}
	return nil
}

func loadSnapshot(c *cli.Context) (*planner.Snapshot, time.Time, error) {
	now := time.Now()
	if raw := c.String("as-of"); raw != "" {
		parsed, ok := normalize.ParseDate(raw)
		if !ok {
			return nil, time.Time{}, fmt.Errorf("unparseable --as-of date: %q", raw)
		}
		now = parsed
	}

	dealer := c.String("dealer")

	var feeds *planner.RawFeeds
	switch {
	case c.String("snapshot") != "":
		loaded, err := loadFeedsFile(c.String("snapshot"))
		if err != nil {
			return nil, time.Time{}, err
		}
		feeds = loaded
	case c.String("db-url") != "":
		db, err := postgres.NewDBFromURL(c.String("db-url"))
		if err != nil {
			return nil, time.Time{}, err
		}
		defer db.Close()

		loaded, err := postgres.NewSnapshotRepository(db).LoadFeeds(context.Background(), dealer)
		if err != nil {
			return nil, time.Time{}, err
		}
		feeds = loaded
	default:
		return nil, time.Time{}, fmt.Errorf("either --snapshot or --db-url must be given")
	}

	snap := planner.BuildSnapshot(dealer, *feeds)
	return &snap, now, nil
}

func loadFeedsFile(path string) (*planner.RawFeeds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var feeds planner.RawFeeds
	if err := json.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}
	return &feeds, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
