package report

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the oscilloscope's serial configuration.
const DefaultBaudRate = 115200

// Open opens the serial sink at the given baud rate.
func Open(port string, baudRate int) (io.ReadWriteCloser, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
	}

	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", port, err)
	}

	return p, nil
}

// Ports returns a list of available serial port names.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}
