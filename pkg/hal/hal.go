package hal

// AnalogInput is a single-shot analog-to-digital converter channel.
// Read performs one conversion and returns a 12-bit code (0-4095).
type AnalogInput interface {
	Read() (uint16, error)
}

// AnalogOutput is a digital-to-analog converter channel taking 8-bit codes.
// A write is a single bounded-time operation and is assumed to succeed,
// so it is safe to call from a trigger's firing context.
type AnalogOutput interface {
	Write(code uint8)
}
