package winding

import (
	"testing"

	"github.com/alejandropetit/Enrollex"
)

type fakeTargets struct {
	meters       int
	millihenries int
	metersAsked  int
	inductAsked  int
}

func (f *fakeTargets) SelectMeters() int {
	f.metersAsked++
	return f.meters
}

func (f *fakeTargets) SelectMillihenries() int {
	f.inductAsked++
	return f.millihenries
}

type fakeSessions struct {
	targets []Target
}

func (f *fakeSessions) Wind(t Target) Result {
	f.targets = append(f.targets, t)
	return Result{Outcome: OutcomeCompleted, Pulses: 42}
}

func TestDispatchTable(t *testing.T) {
	tests := []struct {
		name     string
		material enrollex.Material
		mode     enrollex.Mode
		expected Target
		asks     func(*fakeTargets) int
	}{
		{
			"ThreadManualWindsSelectedLength",
			enrollex.MaterialThread, enrollex.ModeManual,
			LengthTarget(7),
			func(f *fakeTargets) int { return f.metersAsked },
		},
		{
			"ThreadAutoWindsOpenEnded",
			enrollex.MaterialThread, enrollex.ModeAuto,
			NoTarget(),
			nil,
		},
		{
			"CopperManualWindsSelectedInductance",
			enrollex.MaterialCopper, enrollex.ModeManual,
			TurnsTarget(TurnsForInductance(500)),
			func(f *fakeTargets) int { return f.inductAsked },
		},
		{
			"CopperAutoWindsOneHenry",
			enrollex.MaterialCopper, enrollex.ModeAuto,
			TurnsTarget(TurnsForInductance(1000)),
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := &fakeTargets{meters: 7, millihenries: 500}
			sessions := &fakeSessions{}
			n := NewNavigator(newFakeDisplay(), &scriptDial{}, &scriptButton{}, targets, sessions, testConfig())

			n.dispatch(tt.material, tt.mode)

			if len(sessions.targets) != 1 {
				t.Fatalf("expected one session, got %d", len(sessions.targets))
			}
			if got := sessions.targets[0]; got != tt.expected {
				t.Errorf("expected=%+v, got=%+v", tt.expected, got)
			}
			if tt.asks != nil && tt.asks(targets) != 1 {
				t.Errorf("expected one target prompt")
			}
		})
	}
}

func TestRunOnceSelectsAndDispatches(t *testing.T) {
	// one detent at the top level selects Copper, then confirm; confirm
	// again at the second level keeps Manual
	dial := &scriptDial{steps: []int{1, 0}}
	button := &scriptButton{presses: []bool{false, true, false, true}}
	targets := &fakeTargets{millihenries: 500}
	sessions := &fakeSessions{}

	n := NewNavigator(newFakeDisplay(), dial, button, targets, sessions, testConfig())
	n.RunOnce()

	if len(sessions.targets) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.targets))
	}
	expected := TurnsTarget(TurnsForInductance(500))
	if got := sessions.targets[0]; got != expected {
		t.Errorf("expected=%+v, got=%+v", expected, got)
	}

	// material selection sticks for the next menu cycle
	if n.material != enrollex.MaterialCopper {
		t.Errorf("expected Copper to persist, got %v", n.material)
	}
}

func TestRunOnceBackReturnsWithoutSession(t *testing.T) {
	// confirm Thread, advance twice to Back, confirm
	dial := &scriptDial{steps: []int{1, 1}}
	button := &scriptButton{presses: []bool{true, false, false, true}}
	sessions := &fakeSessions{}

	n := NewNavigator(newFakeDisplay(), dial, button, &fakeTargets{}, sessions, testConfig())
	n.RunOnce()

	if len(sessions.targets) != 0 {
		t.Errorf("expected no session after Back, got %d", len(sessions.targets))
	}
	if n.material != enrollex.MaterialThread {
		t.Errorf("expected Thread, got %v", n.material)
	}
}
