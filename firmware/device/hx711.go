//go:build tinygo

package device

import (
	"machine"
	"time"
)

// HX711 reads the load-cell amplifier that measures thread tension. The read
// is non-blocking: if the converter has no sample ready, the previous value
// is returned so the winding loop's period stays bounded.
type HX711 struct {
	dt   machine.Pin
	sck  machine.Pin
	last int32
}

// NewHX711 configures the data and clock lines.
func NewHX711(dt, sck machine.Pin) *HX711 {
	dt.Configure(machine.PinConfig{Mode: machine.PinInput})
	sck.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sck.Low()

	return &HX711{dt: dt, sck: sck}
}

func (h *HX711) Read() int32 {
	// DT high means no sample ready yet
	if h.dt.Get() {
		return h.last
	}

	var raw int32
	for range 24 {
		h.sck.High()
		time.Sleep(time.Microsecond)
		raw = raw<<1 | bit(h.dt.Get())
		h.sck.Low()
		time.Sleep(time.Microsecond)
	}

	// one extra clock selects channel A, gain 128, for the next sample
	h.sck.High()
	time.Sleep(time.Microsecond)
	h.sck.Low()

	// sign-extend the 24-bit two's complement sample
	raw = raw << 8 >> 8

	h.last = raw
	return raw
}

func bit(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// StubSensor is a fixed tension reading, used while the load cell is not
// connected.
type StubSensor int32

func (s StubSensor) Read() int32 {
	return int32(s)
}
