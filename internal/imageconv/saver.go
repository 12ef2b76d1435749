package imageconv

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gen2brain/webp"
)

const jpegQuality = jpeg.DefaultQuality

// SaveOptions tunes Save.
type SaveOptions struct {
	// StopAfterJPEG ends the loop right after a JPEG is written; the
	// remaining formats are skipped.
	StopAfterJPEG bool
}

// SaveResult lists what Save produced.
type SaveResult struct {
	Written []string
	Skipped []Format
}

// Save writes h once per format, next to the source. Formats that cannot
// carry transparency clear h.Background before they are written.
func Save(h *Handle, formats []Format, opts SaveOptions) (*SaveResult, error) {
	if len(h.Frames) == 0 {
		return nil, ErrEmptyImage
	}

	result := &SaveResult{}
	for i, f := range formats {
		out := OutputPath(h.Path, f)

		if !f.TransparencyCapable() {
			h.Background = nil
		}

		if err := saveFile(out, h, f); err != nil {
			return result, err
		}
		result.Written = append(result.Written, out)
		slog.Debug("Saved image", "format", f, "path", out)

		if f == JPEG && opts.StopAfterJPEG {
			result.Skipped = append(result.Skipped, formats[i+1:]...)
			if len(result.Skipped) > 0 {
				slog.Warn("Stopped after jpeg, remaining formats skipped", "skipped", FormatStrings(result.Skipped))
			}
			break
		}
	}
	return result, nil
}

func saveFile(path string, h *Handle, f Format) (err error) {
	if !f.Known() {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := encode(out, h, f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func encode(w io.Writer, h *Handle, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, h.Image())
	case JPEG:
		return jpeg.Encode(w, toRGB(h.Image()), &jpeg.Options{Quality: jpegQuality})
	case GIF:
		return gif.EncodeAll(w, toGIF(h))
	case WebP:
		return webp.Encode(w, h.Image(), webp.Options{Lossless: true, Quality: 100})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// toRGB drops the alpha channel, keeping the straight color values.
func toRGB(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

func toGIF(h *Handle) *gif.GIF {
	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(h.Frames)),
		Delay:     make([]int, len(h.Frames)),
		LoopCount: h.LoopCount,
		Config: image.Config{
			Width:  h.Width,
			Height: h.Height,
		},
	}

	for i, frame := range h.Frames {
		g.Image[i] = toPaletted(frame)
		if i < len(h.Delays) {
			g.Delay[i] = h.Delays[i]
		}
	}
	if len(h.Disposal) == len(h.Frames) {
		g.Disposal = h.Disposal
	}
	return g
}

func toPaletted(img image.Image) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
