package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"treeline-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a workspace dir here (or at --dir)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveStoreForInit(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Ensure(); err != nil {
				return writeErr(cmd, err)
			}
			id, err := s.WorkspaceID(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"dir": s.Dir, "workspaceId": id},
			})
		},
	}
}

// resolveStoreForInit never walks up: init always creates the
// workspace under the current directory unless --dir says otherwise.
func resolveStoreForInit(app *App) (store.Store, error) {
	if app.Dir != "" {
		return store.Store{Dir: app.Dir}, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return store.Store{}, err
	}
	app.Dir = filepath.Join(cwd, store.DirName)
	return store.Store{Dir: app.Dir}, nil
}
