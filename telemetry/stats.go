// Package telemetry aggregates per-generation training statistics and writes them out.
package telemetry

import (
	"log/slog"
	"math"
	"sort"
)

// CandidateResult is what one candidate produced during a generation.
type CandidateResult struct {
	Index    int
	Score    float32
	Kills    int
	Shots    int
	Breaches int
}

// GenerationStats holds aggregated statistics for one completed generation.
type GenerationStats struct {
	Generation  int     `csv:"generation"`
	Population  int     `csv:"population"`
	WallTimeSec float64 `csv:"wall_time"`

	// Score distribution
	ScoreMin  float64 `csv:"score_min"`
	ScoreMean float64 `csv:"score_mean"`
	ScoreStd  float64 `csv:"score_std"`
	ScoreP10  float64 `csv:"score_p10"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`
	ScoreMax  float64 `csv:"score_max"`
	BestIndex int     `csv:"best_index"`

	// Totals across the population
	Kills    int     `csv:"kills"`
	Shots    int     `csv:"shots"`
	Breaches int     `csv:"breaches"`
	HitRate  float64 `csv:"hit_rate"` // kills / shots
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeScoreStats calculates mean, std, and percentiles from score values.
func ComputeScoreStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	var sqDiffSum float64
	for _, v := range values {
		d := v - mean
		sqDiffSum += d * d
	}
	std = math.Sqrt(sqDiffSum / float64(n))

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// Summarize builds the stats for a generation from its candidate results.
// The best index is the first candidate holding the top score.
func Summarize(generation int, results []CandidateResult) GenerationStats {
	s := GenerationStats{
		Generation: generation,
		Population: len(results),
	}
	if len(results) == 0 {
		return s
	}

	scores := make([]float64, len(results))
	s.ScoreMin, s.ScoreMax = math.Inf(1), math.Inf(-1)
	for i, r := range results {
		v := float64(r.Score)
		scores[i] = v
		if v < s.ScoreMin {
			s.ScoreMin = v
		}
		if v > s.ScoreMax {
			s.ScoreMax = v
			s.BestIndex = r.Index
		}
		s.Kills += r.Kills
		s.Shots += r.Shots
		s.Breaches += r.Breaches
	}
	s.ScoreMean, s.ScoreStd, s.ScoreP10, s.ScoreP50, s.ScoreP90 = ComputeScoreStats(scores)

	if s.Shots > 0 {
		s.HitRate = float64(s.Kills) / float64(s.Shots)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("population", s.Population),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Float64("score_min", s.ScoreMin),
		slog.Float64("score_mean", s.ScoreMean),
		slog.Float64("score_std", s.ScoreStd),
		slog.Float64("score_p10", s.ScoreP10),
		slog.Float64("score_p50", s.ScoreP50),
		slog.Float64("score_p90", s.ScoreP90),
		slog.Float64("score_max", s.ScoreMax),
		slog.Int("best_index", s.BestIndex),
		slog.Int("kills", s.Kills),
		slog.Int("shots", s.Shots),
		slog.Int("breaches", s.Breaches),
		slog.Float64("hit_rate", s.HitRate),
	)
}

// LogStats logs the generation stats using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation complete", "stats", s)
}
