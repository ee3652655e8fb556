package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// DataFileEnv names the environment variable holding the default data file.
const DataFileEnv = "ROUTES_DATA"

var (
	ErrNoDataFile = errors.New("the data file name is absent")
)

// Config holds the values every command needs once flags and environment are resolved.
type Config struct {
	DataFile string
}

// Resolve builds the configuration. The data file comes from dataFlag when set,
// otherwise from DataFileEnv, which may also be provided by a .env file in the
// working directory. The path is used exactly as given.
func Resolve(dataFlag string) (*Config, error) {
	// a missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	dataFile := dataFlag
	if dataFile == "" {
		dataFile = os.Getenv(DataFileEnv)
	}
	if dataFile == "" {
		return nil, ErrNoDataFile
	}
	return &Config{DataFile: dataFile}, nil
}
