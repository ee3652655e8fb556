/*
Copyright © 2025 InternatBlackhole
*/
package cmd

import (
	"os"

	"github.com/InternatManhole/route-catalog/cmd/add"
	"github.com/InternatManhole/route-catalog/cmd/export"
	"github.com/InternatManhole/route-catalog/cmd/list"
	"github.com/InternatManhole/route-catalog/cmd/selection"
	"github.com/InternatManhole/route-catalog/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routes",
	Short: "Keep a catalog of transport routes in a JSON file",
	Long: `routes maintains a small catalog of transport routes (start, end and route
number) stored as a JSON file. Routes are kept ordered by their number.

The data file is given with --data or taken from the ROUTES_DATA environment
variable, which may also be set in a .env file.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _loggerSet {
			return nil
		}
		var logLevel logging.StatusLevel
		if _verboseverbose {
			logLevel = logging.EvenMoreVerbose
		} else if _verbose {
			logLevel = logging.Verbose
		} else {
			logLevel = logging.NoStatus
		}

		logging.SetNewLoggerWithLevel(logLevel)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	_verbose        bool
	_verboseverbose bool
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.BoolVarP(&_verbose, "verbose", "v", false, "Enable verbose output")
	fl.BoolVar(&_verboseverbose, "verboseverbose", false, "Enable very verbose output")

	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(selection.SelectCmd)
	rootCmd.AddCommand(export.ExportCmd)
}
