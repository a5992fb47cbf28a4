package game

import (
	"fmt"
	"io"
	"sort"

	"github.com/pthm-cable/turret/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logScoreTable prints every candidate's result for a finished generation,
// best first.
func logScoreTable(generation int, results []telemetry.CandidateResult) {
	sorted := make([]telemetry.CandidateResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Score > sorted[b].Score
	})

	Logf("=== Generation %d ===", generation)
	Logf("  %4s %9s %6s %6s %8s", "ai", "score", "kills", "shots", "breaches")
	for _, r := range sorted {
		Logf("  %4d %9.3f %6d %6d %8d", r.Index, r.Score, r.Kills, r.Shots, r.Breaches)
	}
	Logf("")
}
