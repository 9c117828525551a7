//go:build tinygo

package device

import (
	"machine"

	"github.com/alejandropetit/Enrollex/winding"
)

// Rotary decodes the detented rotary encoder from its CLK/DT lines. One
// decode policy everywhere: a CLK level change is a detent, and DT differing
// from CLK means clockwise.
type Rotary struct {
	clk     machine.Pin
	dt      machine.Pin
	lastCLK bool
}

// NewRotary configures the encoder lines as inputs.
func NewRotary(cfg RotaryConfig) *Rotary {
	cfg.CLK.Configure(machine.PinConfig{Mode: machine.PinInput})
	cfg.DT.Configure(machine.PinConfig{Mode: machine.PinInput})

	return &Rotary{
		clk:     cfg.CLK,
		dt:      cfg.DT,
		lastCLK: cfg.CLK.Get(),
	}
}

func (r *Rotary) Step() int {
	clk := r.clk.Get()
	if clk == r.lastCLK {
		return 0
	}
	r.lastCLK = clk

	if r.dt.Get() != clk {
		return 1
	}
	return -1
}

// Button is a push button wired active-low with an internal pull-up.
type Button struct {
	pin machine.Pin
}

// NewButton configures the pin as a pulled-up input.
func NewButton(pin machine.Pin) *Button {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &Button{pin: pin}
}

func (b *Button) Pressed() bool {
	return !b.pin.Get()
}

// AttachEncoder routes the optical encoder's falling edges into the pulse
// counter. The handler does nothing but the increment; no I/O is allowed in
// interrupt context.
func AttachEncoder(pin machine.Pin, counter *winding.PulseCounter) error {
	pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	return pin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		counter.Increment()
	})
}
