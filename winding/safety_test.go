package winding

import "testing"

func TestMonitorCheck(t *testing.T) {
	tests := []struct {
		name     string
		tension  int32
		pressed  bool
		expected Status
	}{
		{"Safe", 0, false, StatusSafe},
		{"AtLimitIsSafe", DefaultTensionLimit, false, StatusSafe},
		{"OverLimit", DefaultTensionLimit + 1, false, StatusTensionExceeded},
		{"OperatorStop", 0, true, StatusOperatorStop},
		{"TensionBeatsOperator", DefaultTensionLimit + 1, true, StatusTensionExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Monitor{
				Sensor: &scriptSensor{values: []int32{tt.tension}},
				Stop:   &scriptButton{presses: []bool{tt.pressed}},
				Limit:  DefaultTensionLimit,
			}
			if got := m.Check(); got != tt.expected {
				t.Errorf("expected=%v, got=%v", tt.expected, got)
			}
		})
	}
}
