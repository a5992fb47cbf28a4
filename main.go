package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	weightsDir := flag.String("weights-dir", "", "Directory for weight files (empty = use config)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	fast := flag.Bool("fast", false, "Start in fast-forward instead of real time")
	logScores := flag.Bool("log-scores", false, "Print every candidate's score after each generation")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *weightsDir != "" {
		cfg.Persistence.Dir = *weightsDir
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Score tables are plain text; keep them off the JSON stream.
	if *logScores {
		game.SetLogWriter(os.Stderr)
	}

	opts := game.Options{
		Seed:           rngSeed,
		OutputDir:      *outputDir,
		Headless:       *headless,
		MaxGenerations: *maxGenerations,
		RealTime:       cfg.Training.RealTime && !*fast && !*headless,
		LogScores:      *logScores,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var code int
	if *headless {
		code = runHeadless(ctx, opts)
	} else {
		code = runWindow(ctx, opts)
	}
	stop()
	os.Exit(code)
}

// runHeadless trains on this goroutine until interrupted or the generation
// limit is reached, then saves the weights.
func runHeadless(ctx context.Context, opts game.Options) int {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}

	slog.Info("starting headless training",
		"seed", opts.Seed,
		"max_generations", opts.MaxGenerations,
	)

	code := 0
	if err := g.Run(ctx); err != nil {
		slog.Info("training interrupted", "error", err, "generation", g.Generation())
	}
	if err := g.Unload(); err != nil {
		slog.Error("shutdown failed", "error", err)
		code = 1
	}
	return code
}

// runWindow owns the raylib window on the main goroutine while training runs
// on its own goroutine. Closing the window stops training.
func runWindow(ctx context.Context, opts game.Options) int {
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "AI Cannon")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}
	g.Start(ctx)

	for !rl.WindowShouldClose() && g.Running() {
		g.Update()
		g.Draw()
	}

	if err := g.Unload(); err != nil {
		slog.Error("shutdown failed", "error", err)
		return 1
	}
	return 0
}
