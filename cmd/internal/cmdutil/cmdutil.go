package cmdutil

import (
	"github.com/InternatManhole/route-catalog/internal/catalog"
	"github.com/InternatManhole/route-catalog/internal/config"
	"github.com/InternatManhole/route-catalog/internal/console"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/spf13/cobra"
)

// AddDataFlag registers the -d/--data flag every catalog command accepts.
func AddDataFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "data", "d", "", "The data file name (default $"+config.DataFileEnv+")")
}

// OpenCatalog resolves the data file and loads the catalog, reporting to the command's output.
func OpenCatalog(cmd *cobra.Command, dataFlag string) (*catalog.Catalog, error) {
	cfg, err := config.Resolve(dataFlag)
	if err != nil {
		return nil, err
	}
	logging.GetLogger().Verbose("Using data file %s", cfg.DataFile)
	return catalog.Open(cfg, console.NewSink(cmd.OutOrStdout()))
}
