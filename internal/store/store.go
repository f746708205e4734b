// Package store persists one outline per workspace directory. The
// serialized cursor (shape and focus together) is the unit of
// persistence; the store never looks inside it.
package store

import (
	"context"
	"os"
	"path/filepath"

	"treeline-cli/internal/outline"
)

// DirName is the workspace directory name looked for (and created)
// relative to a project root.
const DirName = ".treeline"

type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for an existing workspace dir.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, DirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, DirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load returns the persisted cursor, or (nil, nil) when the workspace
// holds no outline (fresh workspace, or the last node was deleted).
func (s Store) Load(ctx context.Context) (*outline.Cursor, error) {
	return s.loadSQLite(ctx)
}

// Save persists the cursor as the workspace's outline. A nil cursor
// records the empty state.
func (s Store) Save(ctx context.Context, c *outline.Cursor) error {
	return s.saveSQLite(ctx, c)
}
