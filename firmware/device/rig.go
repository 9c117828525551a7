//go:build tinygo

package device

import (
	"machine"
	"time"

	"github.com/alejandropetit/Enrollex/winding"
)

// Rig exposes the machine's actuators and sensors to the serial command loop
// for calibration and bench testing.
type Rig struct {
	spreader *Spreader
	counter  *winding.PulseCounter
	sensor   winding.TensionSensor

	startTime time.Time
	verbose   bool
}

// NewRig wraps the assembled hardware.
func NewRig(spreader *Spreader, counter *winding.PulseCounter, sensor winding.TensionSensor) *Rig {
	return &Rig{
		spreader:  spreader,
		counter:   counter,
		sensor:    sensor,
		startTime: time.Now(),
	}
}

func (r *Rig) SetMotor(on bool) {
	if r.verbose {
		println(r.ts(), "SetMotor", on)
	}
	r.spreader.SetMotor(on)
}

func (r *Rig) SetAngle(angle int) error {
	if r.verbose {
		println(r.ts(), "SetAngle", angle)
	}
	return r.spreader.SetAngle(angle)
}

func (r *Rig) Sweep() {
	if r.verbose {
		println(r.ts(), "Sweep")
	}
	r.spreader.Sweep()
}

func (r *Rig) Pulses() int {
	return r.counter.Read()
}

func (r *Rig) ResetPulses() {
	r.counter.Reset()
}

func (r *Rig) Tension() int32 {
	return r.sensor.Read()
}

// Debug prints out details of the Rig's state
func (r *Rig) Debug() {
	pulses := r.counter.Read()
	println(r.ts(), "pulses=", pulses, "turns=", pulses/winding.PulsesPerRev, "tension=", r.sensor.Read())
}

// Verbose sets the Rig to Verbose mode and increases logging
func (r *Rig) Verbose() {
	r.verbose = true
	println(r.ts(), "Set Verbose Mode")
}

func (r *Rig) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}

func (r *Rig) WriteByte(b byte) error {
	return machine.Serial.WriteByte(b)
}

// ts returns the uptime timestamp for logging
func (r *Rig) ts() string {
	return "[" + time.Since(r.startTime).String() + "]"
}
