package cmd

import (
	"fmt"

	"github.com/audiolibrelab/mediatools/internal/service"
	"github.com/audiolibrelab/mediatools/internal/wave"

	"github.com/spf13/cobra"
)

var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Generate a sine wave and write it to a .wav file",
	Long: `Generate a pure sine tone as mono 16-bit PCM and save it as a WAV file.

The frequency, duration and file name are prompted for unless given as flags.
The sample rate comes from the [generate-waves] section of the config file
(44100 Hz by default) and files are written into its output_dir, if set.
An existing file with the same name is overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, fileName, err := waveInput(cmd)
		if err != nil {
			return err
		}

		// Apply command line overrides on a copy of the loaded config
		runCfg := *cfg
		if cmd.Flags().Changed("output-dir") {
			runCfg.Wave.OutputDir, _ = cmd.Flags().GetString("output-dir")
		}

		svc := service.New(&runCfg)
		info, err := svc.GenerateWave(params, fileName)
		if err != nil {
			return fmt.Errorf("wave generation failed: %w", err)
		}

		fmt.Printf("Wrote %s (%d Hz, %.2fs, %d samples @ %d Hz)\n",
			info.Path, info.Frequency, info.Seconds, info.Samples, info.SampleRate)
		return nil
	},
}

// waveInput collects the tone parameters from flags, prompting for any
// that were not given.
func waveInput(cmd *cobra.Command) (wave.Params, string, error) {
	flags := cmd.Flags()
	params := wave.Params{}
	var err error

	if flags.Changed("frequency") {
		params.Frequency, _ = flags.GetInt("frequency")
	} else if params.Frequency, err = promptInt("Enter fundamental frequency:"); err != nil {
		return params, "", err
	}

	if flags.Changed("duration") {
		params.Duration, _ = flags.GetFloat64("duration")
	} else if params.Duration, err = promptFloat("Enter duration of signal (in seconds):"); err != nil {
		return params, "", err
	}

	params.SampleRate, _ = flags.GetInt("sample-rate")

	fileName, _ := flags.GetString("output")
	if !flags.Changed("output") {
		if fileName, err = promptString("Name your audio:"); err != nil {
			return params, "", err
		}
	}

	return params, fileName, nil
}

func init() {
	waveCmd.Flags().IntP("frequency", "f", 0, "fundamental frequency in Hz")
	waveCmd.Flags().Float64P("duration", "d", 0, "duration of the signal in seconds")
	waveCmd.Flags().StringP("output", "o", "", "output file name")
	waveCmd.Flags().Int("sample-rate", 0, "sample rate in Hz (overrides config)")
	waveCmd.Flags().String("output-dir", "", "directory the file is written to (overrides config)")
}
