package winding

import (
	"fmt"

	"github.com/alejandropetit/Enrollex"
)

// SessionRunner runs one winding session. Satisfied by *Controller.
type SessionRunner interface {
	Wind(Target) Result
}

// TargetSource reads winding targets from the operator. Satisfied by
// *Selector.
type TargetSource interface {
	SelectMeters() int
	SelectMillihenries() int
}

// Navigator owns the two-level menu: material at the top level, mode at the
// second. Confirming a mode dispatches a winding session; Back returns to the
// material level. The selected material persists across cycles, the mode
// resets each time the submenu is entered.
type Navigator struct {
	display  Display
	dial     Dial
	button   Button
	targets  TargetSource
	sessions SessionRunner
	cfg      Config

	material enrollex.Material
}

// NewNavigator assembles the menu navigator.
func NewNavigator(display Display, dial Dial, button Button, targets TargetSource, sessions SessionRunner, cfg Config) *Navigator {
	return &Navigator{
		display:  display,
		dial:     dial,
		button:   button,
		targets:  targets,
		sessions: sessions,
		cfg:      cfg,
	}
}

// New wires the whole machine: pulse counter, safety monitor, winding
// controller, target selector and menu, all sharing one Config.
func New(display Display, dial Dial, button Button, sensor TensionSensor, actuator Actuator, counter *PulseCounter, cfg Config) *Navigator {
	monitor := &Monitor{
		Sensor: sensor,
		Stop:   button,
		Limit:  cfg.TensionLimit,
	}
	controller := NewController(display, actuator, monitor, counter, cfg)
	selector := NewSelector(display, dial, button, cfg)
	return NewNavigator(display, dial, button, selector, controller, cfg)
}

// Run loops the menu forever. Each cycle either runs one session or handles
// a Back.
func (n *Navigator) Run() {
	for {
		n.RunOnce()
	}
}

// RunOnce walks one menu cycle: pick a material, pick a mode, dispatch.
// Back at the second level returns without running a session.
func (n *Navigator) RunOnce() {
	n.material = n.selectMaterial()

	mode := n.selectMode()
	if mode == enrollex.ModeBack {
		return
	}

	n.dispatch(n.material, mode)
}

func (n *Navigator) selectMaterial() enrollex.Material {
	material := n.material
	n.renderMenu(material)

	for {
		if n.button.Pressed() {
			n.cfg.sleep(n.cfg.ConfirmDebounce)
			return material
		}

		if n.dial.Step() != 0 {
			material = material.Next()
			n.renderMenu(material)
			n.cfg.sleep(n.cfg.MenuPause)
		}

		n.cfg.sleep(n.cfg.IdlePoll)
	}
}

func (n *Navigator) selectMode() enrollex.Mode {
	mode := enrollex.ModeManual
	n.renderSubmenu(mode)

	for {
		if n.button.Pressed() {
			n.cfg.sleep(n.cfg.ConfirmDebounce)
			return mode
		}

		if n.dial.Step() != 0 {
			mode = mode.Next()
			n.renderSubmenu(mode)
			n.cfg.sleep(n.cfg.MenuPause)
		}

		n.cfg.sleep(n.cfg.IdlePoll)
	}
}

// dispatch maps material x mode to a session. Sessions are independent: a
// trip or stop never leaks back into the menu state.
func (n *Navigator) dispatch(material enrollex.Material, mode enrollex.Mode) Result {
	switch {
	case material == enrollex.MaterialThread && mode == enrollex.ModeManual:
		meters := n.targets.SelectMeters()
		return n.sessions.Wind(LengthTarget(meters))
	case material == enrollex.MaterialThread && mode == enrollex.ModeAuto:
		return n.sessions.Wind(NoTarget())
	case material == enrollex.MaterialCopper && mode == enrollex.ModeManual:
		millihenries := n.targets.SelectMillihenries()
		return n.sessions.Wind(TurnsTarget(TurnsForInductance(millihenries)))
	default: // Copper Auto winds a fixed 1 H coil
		return n.sessions.Wind(TurnsTarget(TurnsForInductance(1000)))
	}
}

func (n *Navigator) renderMenu(selected enrollex.Material) {
	n.display.Clear()
	n.display.Line(0, "Menu:")
	n.display.Line(1, option("Thread", selected == enrollex.MaterialThread))
	n.display.Line(2, option("Copper", selected == enrollex.MaterialCopper))
	n.display.Show()
}

func (n *Navigator) renderSubmenu(selected enrollex.Mode) {
	n.display.Clear()
	n.display.Line(0, fmt.Sprintf("%s:", n.material))
	n.display.Line(1, option("Manual", selected == enrollex.ModeManual))
	n.display.Line(2, option("Auto", selected == enrollex.ModeAuto))
	n.display.Line(3, option("Back", selected == enrollex.ModeBack))
	n.display.Show()
}

func option(name string, selected bool) string {
	if selected {
		return "> " + name
	}
	return "  " + name
}
