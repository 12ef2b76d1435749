package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/audiolibrelab/mediatools/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfg          *config.Config
	cfgResult    config.LoadResult
	cfgFile      string
	verboseLevel int
)

var rootCmd = &cobra.Command{
	Use:   "mediatools",
	Short: "Small media utilities: tone generator and image converter",
	Long: `mediatools bundles two independent command line utilities:

  wave     generate a sine tone and store it as a 16-bit mono WAV file
  convert  convert an image to one or more of png, jpeg, gif and webp

Missing parameters are asked for interactively, so both commands can be
driven entirely from flags or entirely from prompts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verboseLevel)

		// Configuration problems never abort the run, Load falls back to defaults
		cfg, cfgResult = config.Load(cfgFile)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultPath+")")
	rootCmd.PersistentFlags().IntVarP(&verboseLevel, "verbose", "v", 0, "verbose level: 0=info, 1=debug")

	rootCmd.AddCommand(waveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures slog based on the verbose level
func setupLogging(level int) {
	slogLevel := slog.LevelInfo
	if level >= 1 {
		slogLevel = slog.LevelDebug
	}

	// Configure text handler for clean terminal output
	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}
