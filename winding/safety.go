package winding

// DefaultTensionLimit is the tension cutoff in sensor units.
const DefaultTensionLimit = 3000

// Status is the result of one safety poll.
type Status int

const (
	StatusSafe Status = iota
	StatusTensionExceeded
	StatusOperatorStop
)

func (s Status) String() string {
	switch s {
	case StatusSafe:
		return "Safe"
	case StatusTensionExceeded:
		return "TensionExceeded"
	case StatusOperatorStop:
		return "OperatorStop"
	default:
		return "Unknown"
	}
}

// Monitor polls the tension sensor and the operator stop button. It holds no
// state; every Check reads both inputs so response time stays bounded by the
// control period. Any debounce belongs to the caller, after detection.
type Monitor struct {
	Sensor TensionSensor
	Stop   Button
	Limit  int32
}

// Check returns the first failing condition, tension before operator stop.
func (m *Monitor) Check() Status {
	if m.Sensor.Read() > m.Limit {
		return StatusTensionExceeded
	}
	if m.Stop.Pressed() {
		return StatusOperatorStop
	}
	return StatusSafe
}
