package winding

// Display renders a few short status lines for the operator. The core never
// deals with pixels or fonts, only numbered text lines.
type Display interface {
	Clear()
	Line(n int, text string)
	Show()
}

// Dial is a detented bidirectional rotary input. Step returns +1 for one
// clockwise detent, -1 for counter-clockwise, and 0 when the dial has not
// moved since the last poll.
type Dial interface {
	Step() int
}

// Button reports the debounced level of a push button. Pressed returns true
// while the button is held (the device adapter handles active-low wiring).
type Button interface {
	Pressed() bool
}

// TensionSensor reads the material tension. Units are sensor-defined but must
// be comparable against the configured tension limit.
type TensionSensor interface {
	Read() int32
}

// Actuator drives the winding motor and the spreader that distributes
// material across the spool width.
//
// SweepStep advances the spreader one angular increment along its
// back-and-forth ramp and sleeps the per-degree pause. That pause is the
// control loop's timing tick, so implementations must keep it short.
type Actuator interface {
	SetMotor(on bool)
	SweepStep()
}
