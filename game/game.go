// Package game wires the population, the generational scheduler and the
// raylib front end together.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/renderer"
	"github.com/pthm-cable/turret/systems"
	"github.com/pthm-cable/turret/telemetry"
	"github.com/pthm-cable/turret/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64
	OutputDir      string // CSV and config snapshot; empty disables
	Headless       bool
	MaxGenerations int // 0 = unlimited
	RealTime       bool
	LogScores      bool // print the per-candidate table after each generation
}

// Game owns the population and the scheduler driving it.
type Game struct {
	shared    *Shared
	scheduler *Scheduler
	output    *telemetry.OutputManager
	bookmarks *telemetry.BookmarkDetector
	headless  bool
	logScores bool

	cancel context.CancelFunc
	done   chan struct{}
	runErr error

	// Graphical mode only
	controls *ui.Controls
	hud      *ui.HUD
	sprites  []renderer.Sprite
}

// NewGameWithOptions loads or creates the population and prepares the scheduler.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	size := PopulationSize(cfg.Training.Population)
	candidates := NewPopulation(size, opts.Seed)
	dims := systems.Bounds{Width: cfg.WorldW32(), Height: cfg.WorldH32()}

	g := &Game{
		shared:    NewShared(candidates, dims, opts.RealTime),
		output:    output,
		bookmarks: telemetry.NewBookmarkDetector(10),
		headless:  opts.Headless,
		logScores: opts.LogScores,
	}
	g.scheduler = NewScheduler(g.shared, SchedulerOptions{
		Seed:             opts.Seed,
		MaxGenerations:   opts.MaxGenerations,
		SkipStartupDelay: opts.Headless,
		OnGeneration:     g.recordGeneration,
	})

	if !opts.Headless {
		g.syncWindowSize()
		g.controls = ui.NewControls(g.shared)
		g.hud = ui.NewHUD()
	}

	slog.Info("game created",
		"population", size,
		"headless", opts.Headless,
		"real_time", opts.RealTime,
		"output_dir", output.Dir(),
	)
	return g, nil
}

// recordGeneration runs on the scheduler goroutine after every generation.
func (g *Game) recordGeneration(stats telemetry.GenerationStats, results []telemetry.CandidateResult) {
	stats.LogStats()
	if g.logScores {
		logScoreTable(stats.Generation, results)
	}
	for _, b := range g.bookmarks.Check(stats) {
		b.LogBookmark()
	}
	if err := g.output.WriteGeneration(stats); err != nil {
		slog.Error("failed to write generation stats", "error", err)
	}
}

// Shared exposes the shared state.
func (g *Game) Shared() *Shared { return g.shared }

// Generation returns the number of completed generations.
func (g *Game) Generation() int { return g.scheduler.Generation() }

// Run drives the scheduler on the calling goroutine until it stops.
func (g *Game) Run(ctx context.Context) error {
	return g.scheduler.Run(ctx)
}

// Start drives the scheduler on its own goroutine.
func (g *Game) Start(ctx context.Context) {
	ctx, g.cancel = context.WithCancel(ctx)
	g.done = make(chan struct{})
	go func() {
		defer close(g.done)
		g.runErr = g.scheduler.Run(ctx)
	}()
}

// Running reports whether training is still going.
func (g *Game) Running() bool { return g.shared.Running() }

// Stop clears the run flag, waits for a started scheduler to exit and returns
// its error, if any other than cancellation.
func (g *Game) Stop() error {
	g.shared.Stop()
	if g.cancel == nil {
		return nil
	}
	g.cancel()
	<-g.done
	g.cancel = nil
	if g.runErr != nil && !errors.Is(g.runErr, context.Canceled) {
		return g.runErr
	}
	return nil
}

// Unload stops training, saves every network and closes telemetry output.
func (g *Game) Unload() error {
	var errs []error
	if err := g.Stop(); err != nil {
		errs = append(errs, err)
	}
	if err := SaveWeights(g.shared.Candidates()); err != nil {
		errs = append(errs, err)
	} else {
		steering, fire := WeightPaths(config.Cfg(), g.shared.Size())
		slog.Info("weights saved", "steering", steering, "fire", fire)
	}
	if err := g.output.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing output: %w", err))
	}
	return errors.Join(errs...)
}
