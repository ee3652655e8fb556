package export

import (
	"fmt"

	"github.com/InternatManhole/route-catalog/cmd/export/internal/sqlexport"
	"github.com/InternatManhole/route-catalog/cmd/internal/cmdutil"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/spf13/cobra"
)

// ExportCmd copies the catalog into a SQLite database. The data file is never modified.
var ExportCmd = &cobra.Command{
	Use:   "export --sqlite database",
	Short: "Export the routes to a SQLite database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cmdutil.OpenCatalog(cmd, _data)
		if err != nil {
			return err
		}
		rs := c.Routes()
		exporter := sqlexport.NewExporter(_sqlite, logging.Reporter(logging.GetLogger()))
		if err := exporter.Export(cmd.Context(), rs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d routes to %s.\n", len(rs), _sqlite)
		return nil
	},
}

var (
	_sqlite string
	_data   string
)

func init() {
	fl := ExportCmd.Flags()
	fl.StringVar(&_sqlite, "sqlite", "", "SQLite database file to write the routes to")
	_ = ExportCmd.MarkFlagRequired("sqlite")

	cmdutil.AddDataFlag(ExportCmd, &_data)
}
