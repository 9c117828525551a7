//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/alejandropetit/Enrollex/firmware/device"
	"github.com/alejandropetit/Enrollex/winding"
)

func main() {
	// give the serial monitor a chance to attach before the first logs
	time.Sleep(2 * time.Second)

	display, err := device.NewOLED(machine.I2C0, device.DisplayConfig{
		SDA:     machine.GP12,
		SCL:     machine.GP13,
		Address: 0x3C,
		Width:   128,
		Height:  64,
	})
	if err != nil {
		panic(err)
	}

	spreader, err := device.NewSpreader(
		device.ServoConfig{
			PWM: machine.PWM1,
			Pin: machine.GP18,
		},
		machine.GP0,
		device.CalibrationConfig{
			SweepMinAngle:  50,
			SweepMaxAngle:  130,
			SweepStepPause: 15 * time.Millisecond,
		},
	)
	if err != nil {
		panic(err)
	}

	rotaryCfg := device.RotaryConfig{
		CLK: machine.GP9,
		DT:  machine.GP10,
		SW:  machine.GP11,
	}
	dial := device.NewRotary(rotaryCfg)
	button := device.NewButton(rotaryCfg.SW)

	counter := &winding.PulseCounter{}
	err = device.AttachEncoder(machine.GP15, counter)
	if err != nil {
		panic(err)
	}

	// load cell is not wired up yet; the HX711 lines are GP16/GP17
	sensor := device.StubSensor(0)

	println("winding machine ready")

	menu := winding.New(display, dial, button, sensor, spreader, counter, winding.DefaultConfig())
	menu.Run()
}
