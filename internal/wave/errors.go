package wave

import "errors"

var (
	ErrInvalidFrequency  = errors.New("frequency must not be negative")
	ErrInvalidDuration   = errors.New("duration must be a positive number of seconds")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrEmptyFileName     = errors.New("output file name is empty")
)
