// Package cli wires the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HulkBetii/YT-AllInOne/internal/logging"
)

var (
	verbose bool
	logFile string
	log     *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "yttool",
	Short: "Batch YouTube downloader built on yt-dlp and ffmpeg",
	Long: `yttool downloads YouTube videos, playlists and channel uploads in batches.
It delegates the actual fetching to yt-dlp and optional audio/video conversion
to ffmpeg, adding browser-cookie handling, quality presets and batch reporting
on top.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logging.New(verbose)
		if logFile != "" {
			if _, err := logging.AddFileSink(log, logFile); err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also append logs to this file")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
