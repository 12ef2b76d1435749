package service

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/audiolibrelab/mediatools/internal/config"
	"github.com/audiolibrelab/mediatools/internal/imageconv"
	"github.com/audiolibrelab/mediatools/internal/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.RGBA{0xff, 0, 0, 0xff})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, img))
}

func TestGenerateWave_UsesConfiguredDefaults(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "waves")
	cfg := config.Default()
	cfg.Wave.SampleRate = 8000
	cfg.Wave.OutputDir = outDir

	svc := New(cfg)
	info, err := svc.GenerateWave(wave.Params{Frequency: 440, Duration: 0.5}, "a4.wav")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "a4.wav"), info.Path)
	assert.Equal(t, 8000, info.SampleRate)
	assert.Equal(t, 4000, info.Samples)
	assert.InDelta(t, 0.5, info.Seconds, 1e-9)

	stat, err := os.Stat(info.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(44+2*4000), stat.Size())
}

func TestGenerateWave_ExplicitSampleRateWins(t *testing.T) {
	dir := t.TempDir()
	svc := New(config.Default())

	info, err := svc.GenerateWave(wave.Params{Frequency: 440, Duration: 1, SampleRate: 16000}, filepath.Join(dir, "tone.wav"))
	require.NoError(t, err)
	assert.Equal(t, 16000, info.SampleRate)
	assert.Equal(t, 16000, info.Samples)
}

func TestGenerateWave_InvalidInput(t *testing.T) {
	svc := New(nil)

	_, err := svc.GenerateWave(wave.Params{Frequency: -5, Duration: 1}, "x.wav")
	assert.ErrorIs(t, err, wave.ErrInvalidFrequency)

	_, err = svc.GenerateWave(wave.Params{Frequency: 5, Duration: 1}, "")
	assert.ErrorIs(t, err, wave.ErrEmptyFileName)
}

func TestConvertImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writePNG(t, src)

	svc := New(config.Default())
	res, err := svc.ConvertImage(imageconv.Request{
		SourcePath: src,
		Formats:    []imageconv.Format{imageconv.GIF, imageconv.JPEG, imageconv.WebP},
	})
	require.NoError(t, err)

	// stop_after_jpeg defaults to true
	assert.Equal(t, []string{filepath.Join(dir, "pic.gif"), filepath.Join(dir, "pic.jpeg")}, res.Written)
	assert.Equal(t, []imageconv.Format{imageconv.WebP}, res.Skipped)
}

func TestConvertImage_PolicyError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writePNG(t, src)

	cfg := config.Default()
	cfg.Convert.CheckFormats = true
	cfg.Convert.RejectCurrentFormat = true

	_, err := New(cfg).ConvertImage(imageconv.Request{
		SourcePath: src,
		Formats:    []imageconv.Format{imageconv.PNG},
	})
	assert.ErrorIs(t, err, imageconv.ErrCurrentFormatSelected)
}

func TestDescribeImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writePNG(t, src)

	cfg := config.Default()
	cfg.Convert.CheckFormats = true
	cfg.Convert.RejectCurrentFormat = true

	info, err := New(cfg).DescribeImage(src)
	require.NoError(t, err)

	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 2, info.Width)
	assert.Equal(t, 3, info.Height)
	assert.Equal(t, 1, info.Frames)
	assert.False(t, info.HasBackground)
	require.Len(t, info.Outputs, len(imageconv.KnownFormats))

	byFormat := map[string]OutputInfo{}
	for _, out := range info.Outputs {
		byFormat[out.Format] = out
	}
	assert.True(t, byFormat["png"].Exists)
	assert.True(t, byFormat["png"].Rejected)
	assert.True(t, byFormat["png"].Transparency)
	assert.False(t, byFormat["gif"].Exists)
	assert.False(t, byFormat["gif"].Rejected)
	assert.Equal(t, filepath.Join(dir, "pic.jpeg"), byFormat["jpeg"].Path)
	assert.False(t, byFormat["jpeg"].Transparency)
}

func TestDescribeImage_Unsupported(t *testing.T) {
	_, err := New(nil).DescribeImage("scan.tiff")
	assert.ErrorIs(t, err, imageconv.ErrUnsupportedFormat)
}
