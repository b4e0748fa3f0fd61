package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/woozymasta/rttex"
	"github.com/woozymasta/rttex/internal/export"
)

var (
	convertOutput    string
	convertFormat    string
	convertDDSFormat string
	convertMipmaps   bool
	convertWidth     int
	convertHeight    int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input...>",
	Short: "Convert RTTEX textures to PNG, BMP or DDS",
	Long: `Decode the base level of each RTTEX texture and write it as an image.

The output format is taken from --format, then from the --output extension,
and defaults to PNG. Without --output each input is written next to itself
with the extension replaced.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertOutput != "" && len(args) > 1 {
			return errors.New("--output requires a single input")
		}

		opts, err := exportOptions()
		if err != nil {
			return err
		}

		failed := 0
		for _, in := range args {
			out := outputPath(in, convertOutput, opts.Format)
			if err := convertFile(in, out, opts); err != nil {
				logf("%s: %v\n", in, err)
				failed++
				continue
			}
			debugf("%s -> %s\n", in, out)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}

		return nil
	},
}

func exportOptions() (*export.Options, error) {
	opts := &export.Options{
		Format:  export.FormatPNG,
		Width:   convertWidth,
		Height:  convertHeight,
		Mipmaps: convertMipmaps,
	}

	switch {
	case convertFormat != "":
		f, err := export.ParseFormat(convertFormat)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	case convertOutput != "":
		f, err := export.FormatFromPath(convertOutput)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}

	ddsFormat, err := export.ParseDDSFormat(convertDDSFormat)
	if err != nil {
		return nil, err
	}
	opts.DDSFormat = ddsFormat

	if (convertWidth > 0) != (convertHeight > 0) {
		return nil, fmt.Errorf("%w: --width and --height must be set together", export.ErrInvalidSize)
	}

	return opts, nil
}

// outputPath returns out, or in with its extension replaced by the format.
func outputPath(in, out string, format export.Format) string {
	if out != "" {
		return out
	}

	return strings.TrimSuffix(in, filepath.Ext(in)) + "." + string(format)
}

func convertFile(in, out string, opts *export.Options) error {
	img, err := rttex.ReadWithOptions(in, readOptions())
	if err != nil {
		return err
	}
	debugf("%s: %dx%d\n", in, img.Bounds().Dx(), img.Bounds().Dy())

	return export.WriteFile(out, img, opts)
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (single input only)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Output format: png, bmp or dds")
	convertCmd.Flags().StringVar(&convertDDSFormat, "dds-format", "bgra8", "DDS pixel format: bgra8, rgba8, dxt1 or dxt5")
	convertCmd.Flags().BoolVar(&convertMipmaps, "mipmaps", false, "Write a full mip chain into DDS output")
	convertCmd.Flags().IntVar(&convertWidth, "width", 0, "Resample to this width")
	convertCmd.Flags().IntVar(&convertHeight, "height", 0, "Resample to this height")
}
