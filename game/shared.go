package game

import (
	"sync"
	"sync/atomic"

	"github.com/pthm-cable/turret/systems"
)

// Shared holds state read or written by more than one goroutine: the candidate
// goroutines, the scheduler and the render loop. Every field has its own lock
// so a reader of one never waits on a writer of another.
type Shared struct {
	running  atomic.Bool
	realTime atomic.Bool

	dimsMu sync.Mutex
	dims   systems.Bounds

	selectedMu sync.Mutex
	selected   int

	scoresMu sync.Mutex
	scores   []float32

	elapsedMu sync.Mutex
	elapsed   []float32

	candidates []*Candidate
}

// NewShared creates the shared state for a population. The run flag starts set.
func NewShared(candidates []*Candidate, dims systems.Bounds, realTime bool) *Shared {
	s := &Shared{
		dims:       dims,
		scores:     make([]float32, len(candidates)),
		elapsed:    make([]float32, len(candidates)),
		candidates: candidates,
	}
	s.running.Store(true)
	s.realTime.Store(realTime)
	for _, c := range candidates {
		c.Reset(dims.Center())
	}
	return s
}

// Size returns the population size.
func (s *Shared) Size() int { return len(s.candidates) }

// Candidate returns candidate i.
func (s *Shared) Candidate(i int) *Candidate { return s.candidates[i] }

// Candidates returns the population in index order.
func (s *Shared) Candidates() []*Candidate { return s.candidates }

// Running reports whether the run flag is still set.
func (s *Shared) Running() bool { return s.running.Load() }

// Stop clears the run flag. Candidates notice on their next tick.
func (s *Shared) Stop() { s.running.Store(false) }

// RealTime reports whether candidates step by wall-clock time.
func (s *Shared) RealTime() bool { return s.realTime.Load() }

// ToggleRealTime flips the speed mode and returns the new value.
func (s *Shared) ToggleRealTime() bool {
	for {
		old := s.realTime.Load()
		if s.realTime.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Dims returns the current viewport.
func (s *Shared) Dims() systems.Bounds {
	s.dimsMu.Lock()
	defer s.dimsMu.Unlock()
	return s.dims
}

// Resize updates the viewport and re-centers every turret.
func (s *Shared) Resize(width, height float32) {
	s.dimsMu.Lock()
	s.dims = systems.Bounds{Width: width, Height: height}
	center := s.dims.Center()
	s.dimsMu.Unlock()

	for _, c := range s.candidates {
		c.Recenter(center)
	}
}

// Selected returns the index of the displayed candidate.
func (s *Shared) Selected() int {
	s.selectedMu.Lock()
	defer s.selectedMu.Unlock()
	return s.selected
}

// SelectNext moves the selection up, stopping at the last candidate.
func (s *Shared) SelectNext() int {
	s.selectedMu.Lock()
	defer s.selectedMu.Unlock()
	if s.selected < len(s.candidates)-1 {
		s.selected++
	}
	return s.selected
}

// SelectPrev moves the selection down, stopping at 0.
func (s *Shared) SelectPrev() int {
	s.selectedMu.Lock()
	defer s.selectedMu.Unlock()
	if s.selected > 0 {
		s.selected--
	}
	return s.selected
}

// SetScore records the final score of candidate i for this generation.
func (s *Shared) SetScore(i int, score float32) {
	s.scoresMu.Lock()
	s.scores[i] = score
	s.scoresMu.Unlock()
}

// Scores returns a copy of the score table.
func (s *Shared) Scores() []float32 {
	s.scoresMu.Lock()
	defer s.scoresMu.Unlock()
	out := make([]float32, len(s.scores))
	copy(out, s.scores)
	return out
}

// AddElapsed adds dt to candidate i's simulated time and returns the new total.
func (s *Shared) AddElapsed(i int, dt float32) float32 {
	s.elapsedMu.Lock()
	defer s.elapsedMu.Unlock()
	s.elapsed[i] += dt
	return s.elapsed[i]
}

// Elapsed returns candidate i's simulated time this generation.
func (s *Shared) Elapsed(i int) float32 {
	s.elapsedMu.Lock()
	defer s.elapsedMu.Unlock()
	return s.elapsed[i]
}

// ResetElapsed zeroes every candidate's simulated time.
func (s *Shared) ResetElapsed() {
	s.elapsedMu.Lock()
	defer s.elapsedMu.Unlock()
	for i := range s.elapsed {
		s.elapsed[i] = 0
	}
}

// Snapshot copies candidate i's drawable state.
func (s *Shared) Snapshot(i int) CandidateSnapshot {
	snap := s.candidates[i].Snapshot()
	snap.Elapsed = s.Elapsed(i)
	return snap
}
