package game

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/telemetry"
)

// perfLogInterval is how many generations pass between perf log lines.
const perfLogInterval = 10

// SchedulerOptions configures a Scheduler.
type SchedulerOptions struct {
	Seed             int64
	MaxGenerations   int  // 0 = run until stopped
	SkipStartupDelay bool // start the first generation immediately
	OnGeneration     func(telemetry.GenerationStats, []telemetry.CandidateResult)
}

// Scheduler runs generations: every candidate simulates in its own goroutine,
// the scheduler waits for all of them, then ranks by score and reseeds the
// worse half from mutated copies of the better half.
type Scheduler struct {
	shared *Shared
	rng    *rand.Rand
	perf   *telemetry.PerfCollector

	maxGenerations int
	onGeneration   func(telemetry.GenerationStats, []telemetry.CandidateResult)

	trainingTime float32
	fastDT       float32
	tweak        float64
	startupDelay time.Duration

	generation atomic.Int32
	last       atomic.Pointer[telemetry.GenerationStats]
}

// NewScheduler creates a scheduler over shared.
func NewScheduler(shared *Shared, opts SchedulerOptions) *Scheduler {
	cfg := config.Cfg()
	delay := time.Duration(cfg.StartupDelaySeconds() * float64(time.Second))
	if opts.SkipStartupDelay {
		delay = 0
	}
	return &Scheduler{
		shared:         shared,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		perf:           telemetry.NewPerfCollector(perfLogInterval),
		maxGenerations: opts.MaxGenerations,
		onGeneration:   opts.OnGeneration,
		trainingTime:   cfg.Derived.TrainingTime32,
		fastDT:         cfg.Derived.FastDT32,
		tweak:          cfg.Training.MaxTweakChange,
		startupDelay:   delay,
	}
}

// Generation returns the number of completed generations.
func (s *Scheduler) Generation() int { return int(s.generation.Load()) }

// LastStats returns the stats of the most recent completed generation.
func (s *Scheduler) LastStats() (telemetry.GenerationStats, bool) {
	p := s.last.Load()
	if p == nil {
		return telemetry.GenerationStats{}, false
	}
	return *p, true
}

// Run blocks until the run flag clears or ctx is cancelled. Cancelling ctx
// clears the run flag, so in-flight candidates stop on their next tick and the
// interrupted generation is discarded.
func (s *Scheduler) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, s.shared.Stop)
	defer stop()

	if s.startupDelay > 0 {
		timer := time.NewTimer(s.startupDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.shared.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	slog.Info("training started",
		"population", s.shared.Size(),
		"training_time", s.trainingTime,
		"real_time", s.shared.RealTime(),
	)

	for s.shared.Running() {
		s.perf.Start()
		s.perf.StartPhase(telemetry.PhaseSimulate)
		s.runGeneration()
		if !s.shared.Running() {
			break
		}

		s.perf.StartPhase(telemetry.PhaseEvaluate)
		scores := s.shared.Scores()
		stats, results := s.evaluate(scores)

		s.perf.StartPhase(telemetry.PhaseReseed)
		s.reseed(scores)

		s.perf.StartPhase(telemetry.PhaseReset)
		s.reset()

		stats.WallTimeSec = s.perf.End().Seconds()
		s.last.Store(&stats)
		gen := int(s.generation.Add(1))

		if s.onGeneration != nil {
			s.onGeneration(stats, results)
		}
		if gen%perfLogInterval == 0 {
			s.perf.Stats().LogStats()
		}
		if s.maxGenerations > 0 && gen >= s.maxGenerations {
			slog.Info("max generations reached", "generation", gen)
			s.shared.Stop()
		}
	}

	return ctx.Err()
}

// runGeneration starts one goroutine per candidate and waits for all of them.
func (s *Scheduler) runGeneration() {
	var wg sync.WaitGroup
	for i := 0; i < s.shared.Size(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.runCandidate(i)
		}(i)
	}
	wg.Wait()
}

// runCandidate ticks candidate i until its simulated time exceeds the training
// time or the run flag clears. The score is published only if still running.
func (s *Scheduler) runCandidate(i int) {
	c := s.shared.Candidate(i)
	last := time.Now()

	for s.shared.Running() && s.shared.Elapsed(i) <= s.trainingTime {
		now := time.Now()
		dt := s.fastDT
		if s.shared.RealTime() {
			dt = float32(now.Sub(last).Seconds())
		}
		last = now

		s.shared.AddElapsed(i, dt)
		c.Tick(dt, s.shared.Dims())
	}

	if s.shared.Running() {
		s.shared.SetScore(i, c.Score())
	}
}

// evaluate collects every candidate's result before the reset clears them.
func (s *Scheduler) evaluate(scores []float32) (telemetry.GenerationStats, []telemetry.CandidateResult) {
	results := make([]telemetry.CandidateResult, s.shared.Size())
	for i, c := range s.shared.Candidates() {
		results[i] = c.Result(scores[i])
	}
	return telemetry.Summarize(s.Generation(), results), results
}

// reseed replaces each of the worse half with a mutated clone of a donor from
// the better half. Both networks are replaced together.
func (s *Scheduler) reseed(scores []float32) {
	for _, p := range Pairings(scores) {
		dst := s.shared.Candidate(p.Replace)
		src := s.shared.Candidate(p.Donor)

		dst.Steering = src.Steering.Clone()
		dst.Steering.Mutate(s.rng, s.tweak)
		dst.Fire = src.Fire.Clone()
		dst.Fire.Mutate(s.rng, s.tweak)
	}
}

// reset returns every candidate to its start state at the current center.
func (s *Scheduler) reset() {
	center := s.shared.Dims().Center()
	for _, c := range s.shared.Candidates() {
		c.Reset(center)
	}
	s.shared.ResetElapsed()
}
