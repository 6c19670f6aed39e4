package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drksci/resumepdf/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Aliases: []string{"v"},
	Long:    `Display the current version of resumepdf along with build information. (alias: v)`,
	Args:    cobra.NoArgs,
	Run:     runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.StyleTitle.Render("resumepdf")+" - Résumé PDF emitter")
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderKeyValue("Version", Version))
	fmt.Fprintln(out, ui.RenderKeyValue("Commit", GitCommit))
	fmt.Fprintln(out, ui.RenderKeyValue("Build Date", BuildDate))
}
