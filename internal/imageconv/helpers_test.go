package imageconv

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
}

// writeTestPNG writes a 4x4 image with a semi-transparent column.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 0x80, A: 0xff})
		}
		img.SetNRGBA(3, y, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, img))
	return path
}

// writeTestGIF writes an animation with a global palette and a background index.
func writeTestGIF(t *testing.T, dir, name string, frames int) string {
	t.Helper()

	g := &gif.GIF{
		LoopCount:       0,
		BackgroundIndex: 1,
		Config: image.Config{
			ColorModel: testPalette,
			Width:      4,
			Height:     4,
		},
	}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), testPalette)
		for p := range frame.Pix {
			frame.Pix[p] = uint8((p + i) % len(testPalette))
		}
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10*(i+1))
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, gif.EncodeAll(f, g))
	return path
}

// copyTestdata copies a fixture from testdata/ into dir so that outputs
// written next to it stay out of the source tree.
func copyTestdata(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func requireExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.NoError(t, err, "expected %s to exist", path)
}

func requireMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "expected %s not to exist", path)
}
