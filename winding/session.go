package winding

import (
	"fmt"
	"time"
)

// TargetKind selects how a session decides it is done.
type TargetKind int

const (
	// TargetNone runs until the operator stops the session.
	TargetNone TargetKind = iota
	// TargetLength stops after a length of material, in meters.
	TargetLength
	// TargetTurns stops after a number of drum revolutions.
	TargetTurns
)

// Target is a session's stop condition. It is set once per session and never
// changes while the session runs.
type Target struct {
	Kind  TargetKind
	Value int
}

func NoTarget() Target               { return Target{Kind: TargetNone} }
func LengthTarget(meters int) Target { return Target{Kind: TargetLength, Value: meters} }
func TurnsTarget(turns int) Target   { return Target{Kind: TargetTurns, Value: turns} }

// pulses returns the encoder count at which the target is reached.
func (t Target) pulses() int {
	switch t.Kind {
	case TargetLength:
		return MetersToPulses(t.Value)
	case TargetTurns:
		return t.Value
	default:
		return 0
	}
}

// Outcome says how a session ended.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeStopped
	OutcomeTensionTripped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "Completed"
	case OutcomeStopped:
		return "StoppedByOperator"
	case OutcomeTensionTripped:
		return "SafetyTripped"
	default:
		return "Unknown"
	}
}

// Result is produced exactly once per session.
type Result struct {
	Outcome Outcome
	Pulses  int
}

// Config has the timing and threshold values shared by the controller, the
// target selectors and the menu. Sleep is injectable so tests can run the
// polling loops without real delays.
type Config struct {
	TensionLimit int32

	// Display refresh throttles, in pulses accumulated since the last
	// render. Length sessions wind many pulses per meter so they refresh
	// less often than turn-counted sessions.
	LengthRenderEvery int
	TurnsRenderEvery  int

	StepDebounce    time.Duration
	ConfirmDebounce time.Duration
	MenuPause       time.Duration
	IdlePoll        time.Duration
	ResultHold      time.Duration

	Sleep func(time.Duration)
}

// DefaultConfig returns the calibrated timings for the machine.
func DefaultConfig() Config {
	return Config{
		TensionLimit:      DefaultTensionLimit,
		LengthRenderEvery: 100,
		TurnsRenderEvery:  20,
		StepDebounce:      100 * time.Millisecond,
		ConfirmDebounce:   200 * time.Millisecond,
		MenuPause:         300 * time.Millisecond,
		IdlePoll:          20 * time.Millisecond,
		ResultHold:        2 * time.Second,
		Sleep:             time.Sleep,
	}
}

func (c Config) sleep(d time.Duration) {
	if c.Sleep != nil {
		c.Sleep(d)
	}
}

// Controller runs one winding session at a time. Between sessions it is idle
// and owns no moving hardware. The session loop is single-threaded and
// cooperative: the spreader's per-degree pause is the iteration period, and
// the only asynchronous activity is the encoder interrupt feeding the pulse
// counter.
type Controller struct {
	display  Display
	actuator Actuator
	monitor  *Monitor
	counter  *PulseCounter
	cfg      Config
}

// NewController assembles a winding controller from its collaborators.
func NewController(display Display, actuator Actuator, monitor *Monitor, counter *PulseCounter, cfg Config) *Controller {
	return &Controller{
		display:  display,
		actuator: actuator,
		monitor:  monitor,
		counter:  counter,
		cfg:      cfg,
	}
}

// Wind runs a session until the target is reached, the tension limit trips,
// or the operator presses stop. The pulse counter is reset once at session
// start; after that it only grows, so progress checks never double-count.
func (c *Controller) Wind(target Target) Result {
	c.counter.Reset()

	renderEvery := c.cfg.LengthRenderEvery
	if target.Kind == TargetTurns {
		renderEvery = c.cfg.TurnsRenderEvery
	}
	goal := target.pulses()

	c.renderStart(target)
	c.actuator.SetMotor(true)

	lastShown := 0
	for {
		pulses := c.counter.Read()

		if target.Kind != TargetNone && pulses >= goal {
			c.actuator.SetMotor(false)
			return c.finish(target, Result{Outcome: OutcomeCompleted, Pulses: c.counter.Read()})
		}

		if pulses-lastShown >= renderEvery {
			lastShown = pulses
			c.renderProgress(target, pulses)
		}

		// one spreader increment; its pause paces the whole loop
		c.actuator.SweepStep()

		switch c.monitor.Check() {
		case StatusTensionExceeded:
			c.actuator.SetMotor(false)
			return c.finish(target, Result{Outcome: OutcomeTensionTripped, Pulses: c.counter.Read()})
		case StatusOperatorStop:
			// motor off before the debounce so the stop takes effect now
			c.actuator.SetMotor(false)
			c.cfg.sleep(c.cfg.ConfirmDebounce)
			return c.finish(target, Result{Outcome: OutcomeStopped, Pulses: c.counter.Read()})
		}
	}
}

func (c *Controller) renderStart(target Target) {
	c.display.Clear()
	switch target.Kind {
	case TargetNone:
		c.display.Line(0, "Winding (auto)...")
		c.display.Line(1, "Press SW to stop")
	case TargetLength:
		c.display.Line(0, "Winding...")
		c.display.Line(1, fmt.Sprintf("Target: %d m", target.Value))
	case TargetTurns:
		c.display.Line(0, "Winding coil...")
		c.display.Line(1, fmt.Sprintf("Target: %d turns", target.Value))
		c.display.Line(2, "Press SW to stop")
	}
	c.display.Show()
}

func (c *Controller) renderProgress(target Target, pulses int) {
	c.display.Clear()
	switch target.Kind {
	case TargetTurns:
		c.display.Line(0, "Winding coil...")
		c.display.Line(1, fmt.Sprintf("Turns: %d", pulses))
	default:
		c.display.Line(0, "Winding...")
		c.display.Line(1, fmt.Sprintf("Meters: %.2f", PulsesToMeters(pulses)))
	}
	c.display.Line(2, "Press SW to stop")
	c.display.Show()
}

// finish reports the session result on the display, holds it so the operator
// can read it, and hands the result back. The motor is already off by the
// time finish runs.
func (c *Controller) finish(target Target, res Result) Result {
	c.display.Clear()
	switch res.Outcome {
	case OutcomeCompleted:
		c.display.Line(0, "Winding complete!")
	case OutcomeStopped:
		c.display.Line(0, "Winding stopped.")
	case OutcomeTensionTripped:
		c.display.Line(0, "TENSION LIMIT!")
		c.display.Line(1, "Motor stopped.")
	}

	if res.Outcome != OutcomeTensionTripped {
		switch target.Kind {
		case TargetTurns:
			c.display.Line(1, fmt.Sprintf("Turns: %d", res.Pulses))
		default:
			c.display.Line(1, fmt.Sprintf("Total: %.2f m", PulsesToMeters(res.Pulses)))
		}
	}
	c.display.Show()

	c.cfg.sleep(c.cfg.ResultHold)
	return res
}
