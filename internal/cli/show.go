package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"treeline-cli/internal/tui"
)

func newShowCmd(app *App) *cobra.Command {
	var markFocus bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the outline as a connector tree without entering the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, err := s.Load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty outline)")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderText(c, markFocus))
			return nil
		},
	}

	cmd.Flags().BoolVar(&markFocus, "focus", false, "Mark the focused node")
	return cmd
}
