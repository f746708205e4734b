package cli

import (
	"github.com/spf13/cobra"

	"treeline-cli/internal/outline"
)

// exportNode is one pre-order item of the outline dump. Position and
// lastSibling carry enough structure to rebuild the tree shape.
type exportNode struct {
	Label       string `json:"label"`
	Position    string `json:"position"`
	LastSibling bool   `json:"lastSibling"`
	Focused     bool   `json:"focused,omitempty"`
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the outline in pre-order for scripts (json or edn)",
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
			nodes := exportNodes(c)
			count := 0
			if c != nil {
				count = c.Len()
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"count": count,
					"nodes": nodes,
				},
			})
		},
	}
}

func exportNodes(c *outline.Cursor) []exportNode {
	nodes := []exportNode{}
	if c == nil {
		return nodes
	}
	it := c.Nodes()
	for {
		info, ok := it.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, exportNode{
			Label:       info.Label,
			Position:    info.Position.String(),
			LastSibling: info.IsLastSibling,
			Focused:     info.IsFocused,
		})
	}
}
