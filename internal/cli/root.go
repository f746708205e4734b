// Package cli wires the cobra command surface around the outline
// store and the interactive editor.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treeline-cli/internal/format"
	"treeline-cli/internal/store"
	"treeline-cli/internal/tui"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "treeline",
		Short:        "Treeline: a focused-cursor outline editor (TUI + CLI)",
		SilenceUsage: true,
		Example: `  # Start the interactive editor
  treeline

  # Print the outline without entering the editor
  treeline show

  # Dump the outline for scripts
  treeline export --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive editor.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TREELINE_DIR", ""), "Path to the workspace dir (default: discover a .treeline dir upward from cwd)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TREELINE_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := resolveStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func resolveStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
