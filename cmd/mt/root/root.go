package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medtrack/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mt",
	Short:         "Medtrack — local-first MAT prep progress tracker",
	Long:          "Medtrack is a local-first CLI/TUI study tracker for medical admission prep: chapter tasks, daily streaks, weak-area analysis and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newCheckCmd(),
		newMetaCmd(),
		newStatusCmd(),
		newListCmd(),
		newTrophiesCmd(),
		newGoalCmd(),
		newThemeCmd(),
		newRemindCmd(),
		newQuoteCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
