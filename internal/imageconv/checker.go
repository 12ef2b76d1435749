package imageconv

import (
	"fmt"
	"strings"
)

// CheckFormats vets a format selection. It fails on an empty selection, on
// tags outside KnownFormats and, when rejectCurrent is set, on a selection
// that contains the source's own format.
func CheckFormats(current Format, formats []Format, rejectCurrent bool) error {
	if len(formats) == 0 {
		return ErrNoFormatsSelected
	}

	var unknown []string
	for _, f := range formats {
		if !f.Known() {
			unknown = append(unknown, string(f))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, strings.Join(unknown, ", "))
	}

	if rejectCurrent {
		cur := ParseFormat(string(current))
		for _, f := range formats {
			if f == cur {
				return fmt.Errorf("%w: %s", ErrCurrentFormatSelected, cur)
			}
		}
	}
	return nil
}
