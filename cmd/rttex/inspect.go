package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/woozymasta/rttex"
)

var inspectDump bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <input...>",
	Short: "Show the headers of RTTEX textures",
	Long: `Show the package header, texture header and mip table of each input,
including compression and pixel format information.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := inspectFile(cmd.OutOrStdout(), path); err != nil {
				logf("%s: %v\n", path, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}

		return nil
	},
}

func inspectFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", rttex.ErrReadFile, err)
	}

	info, err := rttex.Inspect(data, readOptions())
	explainInfo(w, path, len(data), info)
	return err
}

func explainInfo(w io.Writer, path string, size int, info *rttex.Info) {
	_, _ = fmt.Fprintf(w, "====== %s ======\n", path)
	_, _ = fmt.Fprintf(w, "Size: %d bytes\n", size)

	if p := info.Package; p != nil {
		_, _ = fmt.Fprintf(w, "Package: %s version %d\n", p, p.Version)
		_, _ = fmt.Fprintf(w, "Compression: %s\n", p.Compression)
		_, _ = fmt.Fprintf(w, "Declared sizes: compressed %d, decompressed %d\n", p.CompressedSize, p.DecompressedSize)
		_, _ = fmt.Fprintf(w, "Payload: %d bytes\n", info.PayloadSize)
	}

	if t := info.Texture; t != nil {
		explainTexture(w, t)
		_, _ = fmt.Fprintf(w, "Pixel offset: %d\n", info.PixelOffset)
	} else {
		_, _ = fmt.Fprintln(w, "Texture: none")
	}

	if inspectDump {
		dump := spew.ConfigState{Indent: "  ", DisableMethods: true}
		dump.Fdump(w, info)
	}
}

func explainTexture(w io.Writer, t *rttex.TextureHeader) {
	_, _ = fmt.Fprintf(w, "Texture: %dx%d (original %dx%d)\n", t.Width, t.Height, t.OriginalWidth, t.OriginalHeight)
	_, _ = fmt.Fprintf(w, "Format: %s\n", t.Format)
	_, _ = fmt.Fprintf(w, "Alpha: %v, already compressed: %v\n", t.UsesAlpha, t.AlreadyCompressed)
	_, _ = fmt.Fprintf(w, "Mipmaps: %d\n", t.MipMapCount)
	for i, m := range t.Mips {
		_, _ = fmt.Fprintf(w, "  #%d level %d: %dx%d, %d bytes\n", i, m.MipLevel, m.Width, m.Height, m.DataSize)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Dump raw header structures")
}
