package add

import (
	"github.com/InternatManhole/route-catalog/cmd/add/internal/params"
	"github.com/InternatManhole/route-catalog/cmd/internal/cmdutil"
	"github.com/spf13/cobra"
)

// AddCmd inserts a route into the catalog, keeping it ordered by route number.
var AddCmd = &cobra.Command{
	Use:   "add -s start -e end -n number",
	Short: "Add a new route",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.OpenCatalog(cmd, _data)
		if err != nil {
			return err
		}
		c.Add(_params.Start(), _params.End(), _params.Number())
		return c.Close()
	},
}

var (
	_params *params.AddParams
	_data   string
)

func init() {
	_params = params.NewAddParamsWithCobraBindings(AddCmd)
	cmdutil.AddDataFlag(AddCmd, &_data)
}
