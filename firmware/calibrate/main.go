//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/alejandropetit/Enrollex/firmware/commands"
	"github.com/alejandropetit/Enrollex/firmware/device"
	"github.com/alejandropetit/Enrollex/winding"
)

// Calibration firmware: instead of the operator menu, expose the actuators
// and sensors over the USB serial link so sweep angles, pulse counts and
// tension readings can be checked from a host.
func main() {
	time.Sleep(2 * time.Second)

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

	counter := &winding.PulseCounter{}
	err = device.AttachEncoder(machine.GP15, counter)
	if err != nil {
		panic(err)
	}

	sensor := device.NewHX711(machine.GP16, machine.GP17)

	println("calibration console ready, H for help")

	commands.Run(device.NewRig(spreader, counter, sensor))
}
