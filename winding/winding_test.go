package winding

import "time"

// testConfig returns a Config with real thresholds but no real sleeping, so
// the polling loops run instantly under test.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sleep = func(time.Duration) {}
	return cfg
}

type fakeDisplay struct {
	lines   map[int]string
	shows   int
	history []string
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{lines: map[int]string{}}
}

func (d *fakeDisplay) Clear() {
	d.lines = map[int]string{}
}

func (d *fakeDisplay) Line(n int, text string) {
	d.lines[n] = text
}

func (d *fakeDisplay) Show() {
	d.shows++
	d.history = append(d.history, d.lines[0]+"|"+d.lines[1])
}

// scriptDial returns its scripted steps in order, then 0 forever.
type scriptDial struct {
	steps []int
	idx   int
}

func (d *scriptDial) Step() int {
	if d.idx >= len(d.steps) {
		return 0
	}
	step := d.steps[d.idx]
	d.idx++
	return step
}

// scriptButton returns its scripted levels in order, then false forever.
type scriptButton struct {
	presses []bool
	idx     int
}

func (b *scriptButton) Pressed() bool {
	if b.idx >= len(b.presses) {
		return false
	}
	pressed := b.presses[b.idx]
	b.idx++
	return pressed
}

// scriptSensor returns its scripted readings in order, repeating the last one
// forever.
type scriptSensor struct {
	values []int32
	idx    int
}

func (s *scriptSensor) Read() int32 {
	if len(s.values) == 0 {
		return 0
	}
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.idx]
	s.idx++
	return v
}

// fakeActuator simulates winding: while the motor is on, each sweep step
// accumulates perSweep encoder pulses.
type fakeActuator struct {
	counter  *PulseCounter
	perSweep int

	motorOn     bool
	motorEvents []bool
	sweeps      int
}

func (a *fakeActuator) SetMotor(on bool) {
	a.motorOn = on
	a.motorEvents = append(a.motorEvents, on)
}

func (a *fakeActuator) SweepStep() {
	a.sweeps++
	if !a.motorOn {
		return
	}
	for i := 0; i < a.perSweep; i++ {
		a.counter.Increment()
	}
}
