package cmd

import (
	"github.com/audiolibrelab/mediatools/internal/service"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [wav-file]",
	Short: "Play a generated wave file",
	Long:  `Play a wave file with the first available player (aplay, ffplay, mpv or vlc).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.New(cfg)
		return svc.Play(args[0])
	},
}
