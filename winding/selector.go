package winding

import "fmt"

// Selector reads a numeric target from the rotary dial, confirmed with the
// push button. It blocks until the operator confirms; that is fine because it
// is operator-paced and never runs while the motor is on.
type Selector struct {
	display Display
	dial    Dial
	button  Button
	cfg     Config
}

// NewSelector assembles a target selector from its collaborators.
func NewSelector(display Display, dial Dial, button Button, cfg Config) *Selector {
	return &Selector{
		display: display,
		dial:    dial,
		button:  button,
		cfg:     cfg,
	}
}

type pickSpec struct {
	title   string
	format  string
	initial int
	min     int
	max     int
	step    int
}

// SelectMeters reads a thread length target in meters.
func (s *Selector) SelectMeters() int {
	return s.pick(pickSpec{
		title:   "THREAD MANUAL",
		format:  "Meters: %d",
		initial: 1,
		min:     1,
		max:     999,
		step:    1,
	})
}

// SelectMillihenries reads a coil inductance target in mH.
func (s *Selector) SelectMillihenries() int {
	return s.pick(pickSpec{
		title:   "COPPER MANUAL",
		format:  "Value: %d mH",
		initial: 100,
		min:     MinMillihenries,
		max:     MaxMillihenries,
		step:    10,
	})
}

func (s *Selector) pick(spec pickSpec) int {
	value := spec.initial
	s.render(spec, value)

	for {
		if step := s.dial.Step(); step != 0 {
			value += step * spec.step

			// out-of-range input is clamped, never an error
			if value < spec.min {
				value = spec.min
			}
			if value > spec.max {
				value = spec.max
			}

			s.render(spec, value)
			s.cfg.sleep(s.cfg.StepDebounce)
		}

		if s.button.Pressed() {
			s.cfg.sleep(s.cfg.ConfirmDebounce)
			return value
		}

		s.cfg.sleep(s.cfg.IdlePoll)
	}
}

func (s *Selector) render(spec pickSpec, value int) {
	s.display.Clear()
	s.display.Line(0, spec.title)
	s.display.Line(1, fmt.Sprintf(spec.format, value))
	s.display.Line(2, "Press SW")
	s.display.Show()
}
