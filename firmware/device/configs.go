//go:build tinygo

package device

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/servo"
)

// ServoConfig has device-level values for setting up the spreader servo
type ServoConfig struct {
	Pin machine.Pin
	PWM servo.PWM
}

// DisplayConfig selects the I2C bus and geometry of the OLED
type DisplayConfig struct {
	SDA     machine.Pin
	SCL     machine.Pin
	Address uint16
	Width   int16
	Height  int16
}

// RotaryConfig names the rotary encoder lines. SW is the confirm/stop button
// (active-low, internal pull-up).
type RotaryConfig struct {
	CLK machine.Pin
	DT  machine.Pin
	SW  machine.Pin
}

// CalibrationConfig has values for the spreader sweep that depend on the
// spool geometry and servo linkage
type CalibrationConfig struct {
	SweepMinAngle  int
	SweepMaxAngle  int
	SweepStepPause time.Duration
}
