package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/woozymasta/rttex"
)

var (
	strictSizes bool
	maxSize     int64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rttex",
	Short: "Decode RTPACK/RTTEX textures",
	Long: `rttex decodes RTPACK and RTTEX game textures and converts the base
level to PNG, BMP or DDS.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readOptions() *rttex.ReadOptions {
	return &rttex.ReadOptions{
		StrictSizes:         strictSizes,
		MaxDecompressedSize: maxSize,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write detailed information to the terminal")
	rootCmd.PersistentFlags().BoolVar(&strictSizes, "strict", false, "Reject packages whose declared sizes do not match the payload")
	rootCmd.PersistentFlags().Int64Var(&maxSize, "max-size", 0, "Maximum unpacked payload size in bytes (0 = unlimited)")
}
