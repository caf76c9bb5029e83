package anim

import (
	"errors"
	"fmt"
)

var ErrInvalidTiming = errors.New("anim: invalid timing")

type State int

const (
	Idle State = iota
	Opening
	Closing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timing holds the durations of one run, in seconds. OpenDelay is the start
// offset between consecutive cells while opening; closing has none.
type Timing struct {
	OpenDuration  float64
	CloseDuration float64
	OpenDelay     float64
}

func (t Timing) Validate() error {
	if !(t.OpenDuration > 0) {
		return fmt.Errorf("%w: open duration %v must be positive", ErrInvalidTiming, t.OpenDuration)
	}
	if !(t.CloseDuration > 0) {
		return fmt.Errorf("%w: close duration %v must be positive", ErrInvalidTiming, t.CloseDuration)
	}
	if !(t.OpenDelay >= 0) {
		return fmt.Errorf("%w: open delay %v must not be negative", ErrInvalidTiming, t.OpenDelay)
	}
	return nil
}

// Scheduler advances elapsed time on every Tick and derives the eased ratio
// of each cell. A run ends when the aggregate ratio reaches 1; the finish
// listener then fires exactly once. Stop ends a run silently.
type Scheduler struct {
	timing    Timing
	state     State
	elapsed   float64
	cellCount int
	onFinish  func(State)
}

func NewScheduler(t Timing) (*Scheduler, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{timing: t}, nil
}

// OnFinish registers the single finish listener, replacing any previous one.
// It receives the direction of the run that ended.
func (s *Scheduler) OnFinish(fn func(State)) {
	s.onFinish = fn
}

// Start resets elapsed time and begins a run. A run in progress is stopped
// first without notifying the listener.
func (s *Scheduler) Start(dir State, cellCount int) {
	if dir != Opening && dir != Closing {
		panic(fmt.Sprintf("anim: start with direction %v", dir))
	}
	if cellCount < 0 {
		panic(fmt.Sprintf("anim: start with %d cells", cellCount))
	}
	s.Stop()
	s.state = dir
	s.cellCount = cellCount
}

// Stop cancels the current run without firing the finish listener.
func (s *Scheduler) Stop() {
	s.state = Idle
	s.elapsed = 0
}

// Tick advances the clock by dt seconds. It returns true when the caller
// should lay out a frame for the new time, and false when the scheduler is
// idle or the run has just finished. Negative deltas count as zero.
func (s *Scheduler) Tick(dt float64) bool {
	if s.state == Idle {
		return false
	}
	if dt > 0 {
		s.elapsed += dt
	}
	if s.Progress() >= 1 {
		dir := s.state
		s.state = Idle
		if s.onFinish != nil {
			s.onFinish(dir)
		}
		return false
	}
	return true
}

func (s *Scheduler) duration() float64 {
	if s.state == Closing {
		return s.timing.CloseDuration
	}
	return s.timing.OpenDuration
}

func (s *Scheduler) delay() float64 {
	if s.state == Closing {
		return 0
	}
	return s.timing.OpenDelay
}

// Total returns the length of the current run including the stagger.
func (s *Scheduler) Total() float64 {
	return s.duration() + s.delay()*float64(s.cellCount)
}

// Progress returns the eased aggregate ratio of the current run.
func (s *Scheduler) Progress() float64 {
	return Ease(s.elapsed / s.Total())
}

// Ratio returns the eased progress of cell i at the current time.
func (s *Scheduler) Ratio(i int) float64 {
	return Ease((s.elapsed - s.delay()*float64(i)) / s.duration())
}

func (s *Scheduler) State() State { return s.state }
func (s *Scheduler) Running() bool { return s.state != Idle }
func (s *Scheduler) Elapsed() float64 { return s.elapsed }
func (s *Scheduler) CellCount() int { return s.cellCount }
func (s *Scheduler) Timing() Timing { return s.timing }
