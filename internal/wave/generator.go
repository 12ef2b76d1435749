package wave

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultSampleRate is the CD-quality rate used when nothing else is configured.
	DefaultSampleRate = 44100
	// Amplitude is the peak value of a full-scale 16-bit sample.
	Amplitude = math.MaxInt16
)

// MaxSamples bounds the length of a generated tone. A WAV data chunk size
// is a 32-bit field, and a larger count would also overflow the int
// conversion in NumSamples.
const MaxSamples = math.MaxInt32

// Params describes the tone to generate.
type Params struct {
	Frequency  int     // Hz
	Duration   float64 // seconds
	SampleRate int     // samples per second
}

func (p Params) Validate() error {
	if p.Frequency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, p.Frequency)
	}
	if p.Duration <= 0 || math.IsNaN(p.Duration) || math.IsInf(p.Duration, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, p.Duration)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, p.SampleRate)
	}
	if p.Duration*float64(p.SampleRate) > MaxSamples {
		return fmt.Errorf("%w: %v s at %d Hz exceeds %d samples", ErrInvalidDuration, p.Duration, p.SampleRate, MaxSamples)
	}
	return nil
}

// NumSamples returns round(Duration * SampleRate).
func (p Params) NumSamples() int {
	return int(math.Round(p.Duration * float64(p.SampleRate)))
}

// Buffer holds quantized mono samples. It is not modified after Generate returns it.
type Buffer struct {
	Samples    []int16
	SampleRate int
}

func (b *Buffer) Len() int {
	return len(b.Samples)
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Generate renders s[i] = round(32767 * sin(2π·f·i/sr)) for every sample index.
func Generate(p Params) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.NumSamples()
	signal := sampleIndices(n)

	// phase in radians, then amplitude
	floats.Scale(2*math.Pi*float64(p.Frequency)/float64(p.SampleRate), signal)
	for i, phase := range signal {
		signal[i] = math.Sin(phase)
	}
	floats.Scale(Amplitude, signal)

	samples := make([]int16, n)
	for i, v := range signal {
		samples[i] = int16(math.Round(v))
	}

	return &Buffer{Samples: samples, SampleRate: p.SampleRate}, nil
}

// sampleIndices returns [0, 1, ..., n-1] as float64.
func sampleIndices(n int) []float64 {
	idx := make([]float64, n)
	if n < 2 {
		// floats.Span needs at least two elements
		return idx
	}
	return floats.Span(idx, 0, float64(n-1))
}
