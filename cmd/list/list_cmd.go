package list

import (
	"github.com/InternatManhole/route-catalog/cmd/internal/cmdutil"
	"github.com/spf13/cobra"
)

// ListCmd prints every route of the catalog.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.OpenCatalog(cmd, _data)
		if err != nil {
			return err
		}
		if err := c.Render(c.Routes()); err != nil {
			return err
		}
		return c.Close()
	},
}

var _data string

func init() {
	cmdutil.AddDataFlag(ListCmd, &_data)
}
