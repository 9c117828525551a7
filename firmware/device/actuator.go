//go:build tinygo

package device

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/servo"
)

// Spreader drives the winding motor enable line and the servo that sweeps
// the material guide across the spool. The sweep advances one degree per
// SweepStep and reverses at the configured end angles, so each step's pause
// is also the winding control period.
type Spreader struct {
	servo servo.Servo
	motor machine.Pin
	cal   CalibrationConfig

	angle     int
	direction int
}

// NewSpreader sets up the servo and motor pin and parks the guide at the
// minimum sweep angle.
func NewSpreader(servoCfg ServoConfig, motorPin machine.Pin, cal CalibrationConfig) (*Spreader, error) {
	motorPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	motorPin.Low()

	myServo, err := servo.New(servoCfg.PWM, servoCfg.Pin)
	if err != nil {
		return nil, errors.New("error creating servo: " + err.Error())
	}

	err = myServo.SetAngle(cal.SweepMinAngle)
	if err != nil {
		return nil, errors.New("error setting servo angle: " + err.Error())
	}

	return &Spreader{
		servo:     myServo,
		motor:     motorPin,
		cal:       cal,
		angle:     cal.SweepMinAngle,
		direction: 1,
	}, nil
}

// SetMotor enables or disables the winding motor's H-bridge.
func (s *Spreader) SetMotor(on bool) {
	s.motor.Set(on)
}

// SweepStep moves the guide one degree and sleeps the per-degree pause.
func (s *Spreader) SweepStep() {
	s.angle += s.direction
	if s.angle >= s.cal.SweepMaxAngle {
		s.angle = s.cal.SweepMaxAngle
		s.direction = -1
	} else if s.angle <= s.cal.SweepMinAngle {
		s.angle = s.cal.SweepMinAngle
		s.direction = 1
	}

	err := s.servo.SetAngle(s.angle)
	if err != nil {
		println("error setting servo angle:", err.Error())
	}

	time.Sleep(s.cal.SweepStepPause)
}

// SetAngle points the guide at a fixed angle. Used by the calibration
// firmware, not the winding loop.
func (s *Spreader) SetAngle(angle int) error {
	if angle < 0 || angle > 180 {
		return errors.New("angle out of range")
	}
	s.angle = angle
	return s.servo.SetAngle(angle)
}

// Sweep runs one full min-max-min pass.
func (s *Spreader) Sweep() {
	span := s.cal.SweepMaxAngle - s.cal.SweepMinAngle
	for range 2 * span {
		s.SweepStep()
	}
}
