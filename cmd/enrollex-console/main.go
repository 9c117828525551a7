package main

import (
	"flag"
	"io"
	"os"

	"go.bug.st/serial"
)

// enrollex-console bridges stdin/stdout to the calibration firmware's serial
// command loop.
func main() {
	var portName string
	var baudRate int
	flag.StringVar(&portName, "port", "/dev/ttyACM0", "Serial port of the board")
	flag.IntVar(&baudRate, "baud", 115200, "Baud rate")
	flag.Parse()

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		panic(err)
	}
	defer port.Close()

	go func() {
		_, err := io.Copy(port, os.Stdin)
		if err != nil {
			panic(err)
		}
	}()

	_, err = io.Copy(os.Stdout, port)
	if err != nil {
		panic(err)
	}
}
