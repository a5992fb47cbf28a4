package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one generation.
const (
	PhaseSimulate = "simulate"
	PhaseEvaluate = "evaluate"
	PhaseReseed   = "reseed"
	PhaseReset    = "reset"
)

var phaseOrder = []string{PhaseSimulate, PhaseEvaluate, PhaseReseed, PhaseReset}

// PerfSample holds timing data for a single generation.
type PerfSample struct {
	Duration time.Duration
	Phases   map[string]time.Duration
}

// PerfCollector tracks generation timings over a rolling window.
// It is used from the scheduler goroutine only.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	start         time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize generations.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 10
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// Start begins timing a new generation.
func (p *PerfCollector) Start() {
	p.start = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase ends the running phase, if any, and begins timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// End finishes the generation and records its sample.
func (p *PerfCollector) End() time.Duration {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	d := now.Sub(p.start)

	p.samples[p.writeIndex] = PerfSample{Duration: d, Phases: p.currentPhases}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
	p.lastPhase = ""
	return d
}

// PerfStats holds aggregated generation timings.
type PerfStats struct {
	AvgDuration time.Duration
	MinDuration time.Duration
	MaxDuration time.Duration
	PhaseAvg    map[string]time.Duration
	PhasePct    map[string]float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.Duration
		if i == 0 || s.Duration < stats.MinDuration {
			stats.MinDuration = s.Duration
		}
		if s.Duration > stats.MaxDuration {
			stats.MaxDuration = s.Duration
		}
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	stats.AvgDuration = total / time.Duration(p.sampleCount)
	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.sampleCount)
		stats.PhaseAvg[phase] = avg
		if stats.AvgDuration > 0 {
			stats.PhasePct[phase] = float64(avg) / float64(stats.AvgDuration) * 100
		}
	}
	return stats
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_ms", s.AvgDuration.Milliseconds()),
		slog.Int64("min_ms", s.MinDuration.Milliseconds()),
		slog.Int64("max_ms", s.MaxDuration.Milliseconds()),
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the timings using slog.
func (s PerfStats) LogStats() {
	slog.Info("perf", "generations", s)
}
