package imageconv

import "errors"

var (
	ErrUnsupportedFormat     = errors.New("unsupported image format")
	ErrNoFormatsSelected     = errors.New("no formats selected")
	ErrUnknownFormat         = errors.New("unknown format(s) encountered")
	ErrCurrentFormatSelected = errors.New("the selected image already is in the requested format")
	ErrEmptyImage            = errors.New("image has no frames")
)
