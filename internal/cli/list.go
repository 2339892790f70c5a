package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uberpadel/ogimage/pkg/ogimage"
)

// newListCmd creates the list command, which prints the static format table.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured image formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTitle("Configured formats")
			printNewline()
			for _, f := range ogimage.Formats() {
				printKeyValue(f.Key, fmt.Sprintf("%s  %s · %s", f.Icon, f.Title, f.Subtitle))
				printKeyValue("", fmt.Sprintf("%s  (%s %s %s)", f.Filename, f.GradientStart, iconArrow, f.GradientEnd))
			}
			return nil
		},
	}
}
