package imageconv

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	// decoders registered with image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/gen2brain/webp"
)

// Handle is a decoded source image. It is owned by a single conversion run.
type Handle struct {
	Path   string
	Format Format // as reported by the decoder, not the extension
	Width  int
	Height int

	Frames    []image.Image
	Delays    []int  // 100ths of a second, one per frame
	Disposal  []byte // gif disposal methods, nil for other sources
	LoopCount int

	// Background is the declared background color, nil when the source has none.
	Background color.Color
}

// Image returns the first frame.
func (h *Handle) Image() image.Image {
	if len(h.Frames) == 0 {
		return nil
	}
	return h.Frames[0]
}

func (h *Handle) Animated() bool {
	return len(h.Frames) > 1
}

// Load validates the extension of path and decodes the file. Only the
// extension is checked against the known formats, the content is trusted
// to the decoders.
func Load(path string) (*Handle, error) {
	ext := filepath.Ext(path)
	if !ParseFormat(strings.TrimPrefix(ext, ".")).Known() {
		return nil, fmt.Errorf("%w: %q is not a known format", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	h := &Handle{
		Path:   path,
		Format: ParseFormat(name),
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	switch h.Format {
	case GIF:
		if err := h.decodeGIF(data); err != nil {
			return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
		}
		return h, nil
	case WebP:
		if err := h.decodeWebP(data); err != nil {
			return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
		}
		return h, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	h.Frames = []image.Image{img}
	h.Delays = []int{0}
	return h, nil
}

func (h *Handle) decodeGIF(data []byte) error {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if len(g.Image) == 0 {
		return ErrEmptyImage
	}

	h.Frames = make([]image.Image, len(g.Image))
	for i, frame := range g.Image {
		h.Frames[i] = frame
	}
	h.Delays = g.Delay
	h.Disposal = g.Disposal
	h.LoopCount = g.LoopCount

	// the background index only means something with a global color table
	if p, ok := g.Config.ColorModel.(color.Palette); ok && int(g.BackgroundIndex) < len(p) {
		h.Background = p[g.BackgroundIndex]
	}
	return nil
}

// decodeWebP keeps every frame of an animated WebP. The container stores
// frame durations in milliseconds.
func (h *Handle) decodeWebP(data []byte) error {
	w, err := webp.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if len(w.Image) == 0 {
		return ErrEmptyImage
	}

	h.Frames = w.Image
	h.Delays = make([]int, len(w.Image))
	for i := range h.Delays {
		if i < len(w.Delay) {
			h.Delays[i] = w.Delay[i] / 10
		}
	}
	return nil
}
