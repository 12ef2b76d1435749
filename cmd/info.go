package cmd

import (
	"fmt"

	"github.com/audiolibrelab/mediatools/internal/service"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [image]",
	Short: "Show an image's format and the files a conversion would write",
	Long:  `Display the detected format of an image, the output path for every known format and whether the current conversion policy would accept it. Nothing is written.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.New(cfg)
		info, err := svc.DescribeImage(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("=== SOURCE ===\n")
		fmt.Printf("path: %s\n", info.Path)
		fmt.Printf("format: %s\n", info.Format)
		fmt.Printf("size: %dx%d\n", info.Width, info.Height)
		fmt.Printf("frames: %d\n", info.Frames)
		fmt.Printf("background: %t\n", info.HasBackground)

		fmt.Printf("\n=== OUTPUTS ===\n")
		for _, out := range info.Outputs {
			fmt.Printf("%-5s %s %s\n", out.Format, out.Path, outputIndicator(out))
		}

		fmt.Printf("\n=== POLICY === (%s, %s)\n", cfgResult.Path, cfgResult.Status)
		fmt.Printf("is_checking_formats: %t\n", info.Policy.CheckFormats)
		fmt.Printf("check_current_format_in_selection: %t\n", info.Policy.RejectCurrentFormat)
		fmt.Printf("stop_after_jpeg: %t\n", info.Policy.StopAfterJPEG)
		return nil
	},
}

// outputIndicator returns the bracketed flags shown after an output path
func outputIndicator(out service.OutputInfo) string {
	indicator := ""
	if out.Rejected {
		indicator += "[rejected]"
	}
	if out.Exists {
		indicator += "[overwrites]"
	}
	if !out.Transparency {
		indicator += "[no transparency]"
	}
	return indicator
}
