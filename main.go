package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/game"
	"github.com/pthm-cable/starfield/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics using scripted input")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	snapshotOnExit := flag.Bool("snapshot", false, "Write a snapshot and trail image to -snapshot-dir on exit")
	restorePath := flag.String("restore", "", "Resume from a snapshot file")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var restore *telemetry.Snapshot
	if *restorePath != "" {
		snap, err := telemetry.LoadSnapshot(*restorePath)
		if err != nil {
			slog.Error("failed to load snapshot", "path", *restorePath, "error", err)
			os.Exit(1)
		}
		restore = snap
	}

	rngSeed := *seed
	switch {
	case restore != nil && rngSeed == 0:
		rngSeed = restore.RNGSeed
	case rngSeed == 0:
		rngSeed = time.Now().UnixNano()
	}

	if *snapshotOnExit && *snapshotDir == "" {
		slog.Error("-snapshot requires -snapshot-dir")
		os.Exit(1)
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		SnapshotDir:    *snapshotDir,
		OutputDir:      *outputDir,
		Headless:       *headless,
		Restore:        restore,
	}

	var g *game.Game
	if *headless {
		g = game.NewGameWithOptions(opts)

		slog.Info("starting headless run",
			"seed", rngSeed,
			"stats_window", *statsWindow,
			"max_frames", *maxFrames,
		)

		for *maxFrames <= 0 || g.Frame() < int64(*maxFrames) {
			g.UpdateHeadless()
		}
		slog.Info("max frames reached", "frame", g.Frame())
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g = game.NewGameWithOptions(opts)

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxFrames > 0 && g.Frame() >= int64(*maxFrames) {
				break
			}
		}
	}

	if *snapshotOnExit {
		if _, err := g.SaveSnapshot(*snapshotDir); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		}
	}
	g.Unload()
}
