package character

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/looplab/fsm"
)

type SpeedPhase string

const (
	PhaseSettled    SpeedPhase = "settled"
	PhaseConverging SpeedPhase = "converging"
)

const (
	eventDiverge = "diverge"
	eventSettle  = "settle"
)

// SpeedController eases the displayed speed toward a target that is only
// ever moved by relative requests.
type SpeedController struct {
	target    float64
	current   float64
	smoothing float64
	onChange  func(speed float64)
	phase     *fsm.FSM
	snaps     int
}

func NewSpeedController(smoothing float64, onChange func(speed float64)) *SpeedController {
	if onChange == nil {
		onChange = func(float64) {}
	}
	return &SpeedController{
		smoothing: smoothing,
		onChange:  onChange,
		phase: fsm.NewFSM(
			string(PhaseSettled),
			fsm.Events{
				{Name: eventDiverge, Src: []string{string(PhaseSettled)}, Dst: string(PhaseConverging)},
				{Name: eventSettle, Src: []string{string(PhaseConverging)}, Dst: string(PhaseSettled)},
			},
			fsm.Callbacks{},
		),
	}
}

// Initialize sets both speeds and tells listeners the starting value once.
func (s *SpeedController) Initialize(start float64) {
	s.target = start
	s.current = start
	s.transition(eventSettle)
	s.onChange(s.current)
}

func (s *SpeedController) RequestChange(delta float64) {
	s.target += delta
}

func (s *SpeedController) Tick(dt float64) {
	switch {
	case s.current <= s.target-SpeedTolerance || s.current >= s.target+SpeedTolerance:
		s.transition(eventDiverge)
		t := mgl64.Clamp(s.smoothing*dt, 0, 1)
		s.current += (s.target - s.current) * t
		s.onChange(s.current)
	case s.current != s.target:
		s.current = s.target
		s.snaps++
		s.transition(eventSettle)
		s.onChange(s.current)
	default:
		s.transition(eventSettle)
	}
}

func (s *SpeedController) Current() float64 { return s.current }

func (s *SpeedController) Target() float64 { return s.target }

func (s *SpeedController) Phase() SpeedPhase { return SpeedPhase(s.phase.Current()) }

// Snaps counts how many ticks ended inside the tolerance band with a snap.
func (s *SpeedController) Snaps() int { return s.snaps }

func (s *SpeedController) transition(event string) {
	if s.phase.Can(event) {
		_ = s.phase.Event(context.Background(), event)
	}
}
