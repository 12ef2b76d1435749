package cmd

import (
	"fmt"
	"strings"

	"github.com/audiolibrelab/mediatools/internal/imageconv"
	"github.com/audiolibrelab/mediatools/internal/service"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to other formats",
	Long: `Convert an image into one or more of: ` + strings.Join(imageconv.FormatStrings(imageconv.KnownFormats), ", ") + `.

Converted files are written next to the source image and named after it.
The image path and target formats are prompted for unless given as flags.
Format checks are controlled by the [convert-image] section of the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := convertInput(cmd)
		if err != nil {
			return err
		}

		svc := service.New(cfg)
		res, err := svc.ConvertImage(req)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		for _, path := range res.Written {
			fmt.Printf("Saved %s\n", path)
		}
		if len(res.Skipped) > 0 {
			fmt.Printf("Skipped after jpeg: %s\n", strings.Join(imageconv.FormatStrings(res.Skipped), ", "))
		}
		fmt.Println("Images are now saved in the source image's directory")
		return nil
	},
}

// convertInput builds the conversion request from flags, prompting for
// whatever was not given.
func convertInput(cmd *cobra.Command) (imageconv.Request, error) {
	flags := cmd.Flags()
	req := imageconv.Request{}
	var err error

	req.SourcePath, _ = flags.GetString("image")
	if req.SourcePath == "" {
		if req.SourcePath, err = promptExistingFile("Insert the image path"); err != nil {
			return req, err
		}
	}

	var formats []string
	if flags.Changed("format") {
		formats, _ = flags.GetStringSlice("format")
	} else {
		formats, err = promptMultiSelect("Select the formats you want to export to",
			imageconv.FormatStrings(imageconv.KnownFormats))
		if err != nil {
			return req, err
		}
	}
	req.Formats = imageconv.ParseFormats(formats)

	return req, nil
}

func init() {
	convertCmd.Flags().StringP("image", "i", "", "path of the source image")
	convertCmd.Flags().StringSliceP("format", "F", nil, "target formats, comma separated (e.g. png,webp)")
}
