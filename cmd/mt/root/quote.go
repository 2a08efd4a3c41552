package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"medtrack/internal/catalog"
	"medtrack/internal/ui"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := catalog.RandomQuote()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", ui.IconQuote, q.Text)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("— "+q.Author))
			return nil
		},
	}

	return cmd
}
