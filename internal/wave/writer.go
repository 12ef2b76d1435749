package wave

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth       = 16
	numChannels    = 1
	pcmAudioFormat = 1
)

// Encode writes b as a mono 16-bit PCM WAV stream.
func Encode(w io.WriteSeeker, b *Buffer) error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}

	data := make([]int, len(b.Samples))
	for i, s := range b.Samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, b.SampleRate, bitDepth, numChannels, pcmAudioFormat)
	intBuffer := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(intBuffer); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	// Close patches the RIFF and data chunk sizes
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// WriteFile stores b at path, replacing any existing file.
func WriteFile(path string, b *Buffer) (err error) {
	if path == "" {
		return ErrEmptyFileName
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return Encode(f, b)
}
