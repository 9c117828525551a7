package tester_test

import (
	"strings"
	"testing"
	"time"

	"go.bug.st/serial"
)

// Integration test against a board running the calibration firmware. Skipped
// unless the board's serial port is present.
const port = "/dev/ttyACM0"

func sendSerial(t *testing.T, in string, expectedLen int) string {
	t.Helper()
	mode := &serial.Mode{
		BaudRate: 115200,
	}

	p, err := serial.Open(port, mode)
	if err != nil {
		t.Skipf("board not connected: %v", err)
		return ""
	}
	defer p.Close()

	_, err = p.Write([]byte(in))
	if err != nil {
		t.Errorf("unexpected error writing serial: %v", err)
		return ""
	}
	time.Sleep(100 * time.Millisecond)

	buf := make([]byte, expectedLen)
	total := 0
	p.SetReadTimeout(1 * time.Second)
	deadline := time.Now().Add(1 * time.Second)
	for total < expectedLen && time.Now().Before(deadline) {
		n, err := p.Read(buf)
		if err != nil {
			t.Errorf("unexpected error reading serial: %v", err)
			return ""
		}
		total += n
	}
	return string(buf[:total])
}

func TestSerial(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			"ResetThenCount",
			"RC",
			`pulses: 0
pulses: 0
`,
		},
		{
			"Tension",
			"T",
			`tension: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := strings.ReplaceAll(tt.expected, "\n", "\r\n")
			out := sendSerial(t, tt.in, len(expected))
			clean := strings.Trim(out, "\x00")
			if clean != expected {
				t.Errorf("expected=%q, got=%q", expected, clean)
			}
		})
	}
}
