package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkNewRecord            BookmarkType = "new_record"
	BookmarkAccuracyBreakthrough BookmarkType = "accuracy_breakthrough"
	BookmarkBreachSurge          BookmarkType = "breach_surge"
	BookmarkPlateau              BookmarkType = "plateau"
)

// plateauGenerations is how many generations the best score must stay within
// plateauTolerance before a plateau is reported.
const (
	plateauGenerations = 5
	plateauTolerance   = 0.05
)

// Bookmark is a notable generation picked out by the detector.
type Bookmark struct {
	Type        BookmarkType
	Generation  int
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"generation", b.Generation,
		"description", b.Description,
	)
}

// BookmarkDetector watches generation stats for records, breakthroughs and
// stalls.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []GenerationStats
	historySize int
	historyIdx  int
	historyFull bool

	best         float64
	hasBest      bool
	plateauCount int
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < plateauGenerations {
		historySize = plateauGenerations
	}
	return &BookmarkDetector{
		history:     make([]GenerationStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats GenerationStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkNewRecord(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkAccuracyBreakthrough(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBreachSurge(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPlateau(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats GenerationStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []GenerationStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkNewRecord(stats GenerationStats) *Bookmark {
	if bd.hasBest && stats.ScoreMax <= bd.best {
		return nil
	}
	prev, had := bd.best, bd.hasBest
	bd.best, bd.hasBest = stats.ScoreMax, true
	if !had {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkNewRecord,
		Generation:  stats.Generation,
		Description: fmt.Sprintf("Best score %.2f beats previous record %.2f (candidate %d)", stats.ScoreMax, prev, stats.BestIndex),
	}
}

func (bd *BookmarkDetector) checkAccuracyBreakthrough(stats GenerationStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 || stats.Shots == 0 {
		return nil
	}

	var kills, shots int
	for _, h := range history {
		kills += h.Kills
		shots += h.Shots
	}
	if kills == 0 || shots == 0 {
		return nil
	}

	avg := float64(kills) / float64(shots)
	if stats.HitRate > avg*2 && stats.Kills >= 3 {
		return &Bookmark{
			Type:        BookmarkAccuracyBreakthrough,
			Generation:  stats.Generation,
			Description: fmt.Sprintf("Hit rate %.2f is %.1fx average (%.2f)", stats.HitRate, stats.HitRate/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkBreachSurge(stats GenerationStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Breaches
	}
	avg := float64(total) / float64(len(history))
	if avg > 0 && float64(stats.Breaches) > avg*2 {
		return &Bookmark{
			Type:        BookmarkBreachSurge,
			Generation:  stats.Generation,
			Description: fmt.Sprintf("%d breaches, %.1fx the average of %.1f", stats.Breaches, float64(stats.Breaches)/avg, avg),
		}
	}
	return nil
}

// checkPlateau fires once when the best score has barely moved for
// plateauGenerations in a row, then rearms after the next real change.
func (bd *BookmarkDetector) checkPlateau(stats GenerationStats) *Bookmark {
	history := bd.getHistory()
	if len(history) == 0 {
		return nil
	}
	prevIdx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	prev := bd.history[prevIdx]

	if math.Abs(stats.ScoreMax-prev.ScoreMax) > plateauTolerance {
		bd.plateauCount = 0
		return nil
	}
	bd.plateauCount++
	if bd.plateauCount != plateauGenerations {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPlateau,
		Generation:  stats.Generation,
		Description: fmt.Sprintf("Best score stuck near %.2f for %d generations", stats.ScoreMax, plateauGenerations),
	}
}
