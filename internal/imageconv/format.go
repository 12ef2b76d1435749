package imageconv

import (
	"path/filepath"
	"strings"
)

// Format is a lower-case image format tag.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	WebP Format = "webp"
)

// KnownFormats lists every format that can be loaded and saved, in menu order.
var KnownFormats = []Format{PNG, JPEG, GIF, WebP}

func (f Format) String() string {
	return string(f)
}

func (f Format) Known() bool {
	switch f {
	case PNG, JPEG, GIF, WebP:
		return true
	default:
		return false
	}
}

// TransparencyCapable reports whether f keeps alpha and background metadata.
func (f Format) TransparencyCapable() bool {
	return f == WebP || f == PNG
}

// ParseFormat normalizes a user supplied tag. The result may be unknown;
// callers decide whether that is an error.
func ParseFormat(s string) Format {
	return Format(strings.ToLower(strings.TrimSpace(s)))
}

func ParseFormats(tags []string) []Format {
	formats := make([]Format, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		formats = append(formats, ParseFormat(tag))
	}
	return formats
}

func FormatStrings(formats []Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// OutputPath derives the file written for format f: the source's base name
// up to its first '.', the new extension, in the source's directory.
func OutputPath(sourcePath string, f Format) string {
	base := filepath.Base(sourcePath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(filepath.Dir(sourcePath), base+"."+string(f))
}
