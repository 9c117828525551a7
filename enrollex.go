package enrollex

// Material is the spool material selected at the top level of the menu
type Material int

const (
	MaterialThread Material = iota
	MaterialCopper
)

func (m Material) String() string {
	switch m {
	case MaterialThread:
		return "Thread"
	case MaterialCopper:
		return "Copper"
	default:
		return "Unknown"
	}
}

// Next cycles to the next Material option
func (m Material) Next() Material {
	if m == MaterialCopper {
		return MaterialThread
	}
	return m + 1
}

// Mode is the winding mode selected at the second level of the menu
type Mode int

const (
	ModeManual Mode = iota
	ModeAuto
	ModeBack
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "Manual"
	case ModeAuto:
		return "Auto"
	case ModeBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Next cycles to the next Mode option
func (m Mode) Next() Mode {
	if m == ModeBack {
		return ModeManual
	}
	return m + 1
}
