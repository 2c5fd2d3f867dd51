package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HulkBetii/YT-AllInOne/internal/platform"
)

// External binaries yttool depends on. yt-dlp is required; ffmpeg and ffprobe
// are only needed for --audio-format conversion.
var requiredTools = []string{"yt-dlp"}
var optionalTools = []string{"ffmpeg", "ffprobe"}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		var missing []string
		for _, tool := range requiredTools {
			if !reportTool(cmd, tool, true) {
				missing = append(missing, tool)
			}
		}
		for _, tool := range optionalTools {
			reportTool(cmd, tool, false)
		}

		if len(missing) > 0 {
			return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

func reportTool(cmd *cobra.Command, name string, required bool) bool {
	if !platform.CommandExists(name) {
		note := "optional, needed for --audio-format"
		if required {
			note = "required"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "MISSING  %-8s (%s)\n", name, note)
		return false
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok       %s\n", name)
	return true
}
