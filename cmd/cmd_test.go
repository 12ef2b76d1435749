package cmd

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/audiolibrelab/mediatools/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, c := range []*cobra.Command{rootCmd, waveCmd, convertCmd} {
			resetFlags(c.PersistentFlags())
			resetFlags(c.Flags())
		}
	})
	return rootCmd.Execute()
}

// resetFlags restores defaults so flag values do not leak between tests
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func TestWaveCommand_FromFlags(t *testing.T) {
	dir := t.TempDir()
	missingConfig := filepath.Join(dir, "none.ini")

	err := execute(t, "--config", missingConfig, "wave",
		"-f", "440", "-d", "0.1", "-o", "a4.wav", "--sample-rate", "8000", "--output-dir", dir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "a4.wav"))
	require.NoError(t, err)
	assert.Equal(t, int64(44+2*800), info.Size())
}

func TestConvertCommand_FromFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, f.Close())

	configFile := filepath.Join(dir, "convert.ini")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[convert-image]
is_checking_formats = true
check_current_format_in_selection = true
`), 0o644))

	t.Run("rejects current format", func(t *testing.T) {
		err := execute(t, "--config", configFile, "convert", "-i", src, "-F", "gif,PNG")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already is in the requested format")
	})

	t.Run("writes selection", func(t *testing.T) {
		err := execute(t, "--config", configFile, "convert", "-i", src, "-F", "gif")
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "pic.gif"))
		require.NoError(t, err)
	})
}

func TestOutputIndicator(t *testing.T) {
	assert.Equal(t, "", outputIndicator(service.OutputInfo{Transparency: true}))
	assert.Equal(t, "[rejected][overwrites]", outputIndicator(service.OutputInfo{Rejected: true, Exists: true, Transparency: true}))
	assert.Equal(t, "[no transparency]", outputIndicator(service.OutputInfo{}))
}
