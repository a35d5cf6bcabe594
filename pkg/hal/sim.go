package hal

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/narecoronaa/goscope/pkg/config"
)

// SimInput simulates an analog input channel for testing and desktop runs.
// It synthesizes a sine with a DC offset plus deterministic noise and
// quantizes it to a 12-bit code against the reference voltage.
type SimInput struct {
	mu sync.Mutex

	amplitude float32 // V
	offset    float32 // V
	noise     float32 // V
	vref      float32 // V

	phase float32 // normalized [0..1)
	step  float32 // phase advance per read
}

// NewSimInput creates a simulated input. sampleHz is the nominal read rate;
// the phase advances by freq/sampleHz on every Read so the rendered signal
// matches the configured frequency when paced at that rate.
func NewSimInput(cfg *config.SimConfig, vref float64, sampleHz float32) *SimInput {
	if cfg == nil {
		def := config.Default().Sim
		cfg = &def
	}
	if vref <= 0 {
		vref = 3.3
	}
	if sampleHz <= 0 {
		sampleHz = 500
	}

	return &SimInput{
		amplitude: cfg.AmplitudeVolts,
		offset:    cfg.OffsetVolts,
		noise:     cfg.NoiseVolts,
		vref:      float32(vref),
		step:      cfg.FreqHz / sampleHz,
	}
}

// Read performs one simulated conversion.
func (s *SimInput) Read() (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.offset + s.amplitude*math32.Sin(2*math32.Pi*s.phase)

	// Cheap deterministic noise
	if s.noise != 0 {
		v += s.noise * math32.Sin(12345.678*s.phase)
	}

	s.phase += s.step
	if s.phase >= 1 {
		s.phase -= 1
	}

	code := v / s.vref * 4095
	if code < 0 {
		code = 0
	} else if code > 4095 {
		code = 4095
	}

	return uint16(code), nil
}

// SimOutput simulates an analog output channel. It holds only the last
// written code and a write count, so it stays constant-size no matter how
// long the playback trigger runs.
type SimOutput struct {
	mu     sync.Mutex
	last   uint8
	writes int
}

// Write records the 8-bit code as the current output level.
func (s *SimOutput) Write(code uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = code
	s.writes++
}

// Last returns the most recently written code and whether any write happened.
func (s *SimOutput) Last() (uint8, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.writes > 0
}

// Writes returns the number of codes written so far.
func (s *SimOutput) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

var (
	_ AnalogInput  = (*SimInput)(nil)
	_ AnalogOutput = (*SimOutput)(nil)
)
