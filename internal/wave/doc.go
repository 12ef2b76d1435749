// Package wave generates sampled sine tones and stores them as mono 16-bit
// PCM WAV files.
//
// A tone is described by Params and rendered into a Buffer:
//
//	buf, err := wave.Generate(wave.Params{Frequency: 440, Duration: 2, SampleRate: 44100})
//	if err != nil {
//		return err
//	}
//	return wave.WriteFile("a4.wav", buf)
package wave
