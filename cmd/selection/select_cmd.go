package selection

import (
	"github.com/InternatManhole/route-catalog/cmd/internal/cmdutil"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/spf13/cobra"
)

// SelectCmd prints the routes starting or ending at a point.
var SelectCmd = &cobra.Command{
	Use:   "select -p point",
	Short: "Select the routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.OpenCatalog(cmd, _data)
		if err != nil {
			return err
		}
		selected := c.Select(_point)
		logging.GetLogger().Verbose("%d of %d routes touch %q", len(selected), len(c.Routes()), _point)
		if err := c.Render(selected); err != nil {
			return err
		}
		return c.Close()
	},
}

var (
	_point string
	_data  string
)

func init() {
	fl := SelectCmd.Flags()
	fl.StringVarP(&_point, "point", "p", "", "Routes starting or ending at this point")
	_ = SelectCmd.MarkFlagRequired("point")

	cmdutil.AddDataFlag(SelectCmd, &_data)
}
