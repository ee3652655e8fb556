package cmd

import "github.com/InternatManhole/route-catalog/internal/logging"

var _loggerSet bool

// SetLogger installs l and keeps the verbosity flags from replacing it. This is primarily a test helper.
func SetLogger(l logging.Logger) {
	logging.SetLogger(l)
	_loggerSet = l != nil
}
