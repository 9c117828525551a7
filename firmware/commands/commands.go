package commands

import (
	"errors"
	"io"
)

type Command struct {
	Flag        byte
	InputSize   uint
	Run         func(Controller, []byte) error
	Description string
}

// Controller is used to exercise the machine over the serial link
type Controller interface {
	SetMotor(on bool)
	SetAngle(angle int) error
	Sweep()
	Pulses() int
	ResetPulses()
	Tension() int32
	Debug()
	Verbose()

	// I/O
	ReadByte() (byte, error)
}

var (
	MotorCommand = &Command{
		Flag:      'M',
		InputSize: 1,
		Run: func(c Controller, input []byte) error {
			switch input[0] {
			case '0':
				c.SetMotor(false)
			case '1':
				c.SetMotor(true)
			default:
				return errors.New("invalid input: " + string(input))
			}
			return nil
		},
		Description: "Enable or disable the winding motor. Input: '0' or '1'.",
	}
	AngleCommand = &Command{
		Flag:      'A',
		InputSize: 3,
		Run: func(c Controller, input []byte) error {
			angle, err := parseInt(input)
			if err != nil {
				return err
			}
			return c.SetAngle(angle)
		},
		Description: "Point the spreader at an angle. Input: three digits, 000-180.",
	}
	SweepCommand = &Command{
		Flag:      'W',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			c.Sweep()
			return nil
		},
		Description: "Run one full spreader sweep pass.",
	}
	CountCommand = &Command{
		Flag:      'C',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			println("pulses:", c.Pulses())
			return nil
		},
		Description: "Print the encoder pulse count.",
	}
	ResetCommand = &Command{
		Flag:      'R',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			c.ResetPulses()
			println("pulses: 0")
			return nil
		},
		Description: "Reset the encoder pulse count.",
	}
	TensionCommand = &Command{
		Flag:      'T',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			println("tension:", c.Tension())
			return nil
		},
		Description: "Print the tension sensor reading.",
	}
	DebugCommand = &Command{
		Flag:      'D',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			c.Debug()
			return nil
		},
		Description: "Print the current state.",
	}
	VerboseCommand = &Command{
		Flag:      'V',
		InputSize: 0,
		Run: func(c Controller, input []byte) error {
			c.Verbose()
			return nil
		},
		Description: "Enable verbose output.",
	}
	HelpCommand = &Command{
		Flag:        'H',
		InputSize:   0,
		Description: "Show all available commands and their descriptions.",
		Run: func(c Controller, input []byte) error {
			println("Available Commands:")
			for _, cmd := range commands {
				println(string(cmd.Flag) + ": " + cmd.Description)
			}
			return nil
		},
	}
)

var commands = []*Command{
	MotorCommand,
	AngleCommand,
	SweepCommand,
	CountCommand,
	ResetCommand,
	TensionCommand,
	DebugCommand,
	VerboseCommand,
}

// Run reads single-byte command flags and their fixed-size inputs until the
// byte source reports EOF. On the board the source never ends; EOF matters
// when the command stream is piped in tests.
func Run(c Controller) {
	cmdMap := map[byte]*Command{
		HelpCommand.Flag: HelpCommand,
	}

	for _, cmd := range commands {
		cmdMap[cmd.Flag] = cmd
	}

	for {
		cmdIn, err := c.ReadByte()
		if err != nil {
			if err == io.EOF {
				return
			}
			continue
		}

		cmd, ok := cmdMap[cmdIn]
		if !ok {
			continue
		}

		in := make([]byte, cmd.InputSize)
		for i := 0; i < int(cmd.InputSize); {
			b, err := c.ReadByte()
			if err != nil {
				if err == io.EOF {
					return
				}
				continue
			}

			in[i] = b
			i++
		}

		err = cmd.Run(c, in)
		if err != nil {
			println("error:", err.Error())
		}
	}
}

func parseInt(input []byte) (int, error) {
	result := 0
	for _, b := range input {
		if b < '0' || b > '9' {
			return 0, errors.New("invalid input: " + string(input))
		}
		result = result*10 + int(b-'0')
	}
	return result, nil
}
