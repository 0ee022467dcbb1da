package solarsystem

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = Config{}
)

// Config points the tools at the VSOP87 series files and the directory the
// precomputed tables are written to.
type Config struct {
	VSOP87Dir string
	OutputDir string
}

// LoadConfig reads conf.toml from the directory named by the
// SOLARSYSTEM_CONFIG environment variable. The file is read once per
// process; later calls return the cached configuration.
//
// Expected keys:
//
//	[VSOP87]
//	directory = "/path/to/vsop87"
//	[general]
//	output_path = "/path/to/vsop87Computed"
func LoadConfig() (Config, error) {
	if cfgLoaded {
		return config, nil
	}
	confPath := os.Getenv("SOLARSYSTEM_CONFIG")
	if confPath == "" {
		return Config{}, errors.New("environment variable `SOLARSYSTEM_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml not found: %w", confPath, err)
	}
	cfg := Config{
		VSOP87Dir: viper.GetString("VSOP87.directory"),
		OutputDir: viper.GetString("general.output_path"),
	}
	if cfg.VSOP87Dir == "" {
		return Config{}, fmt.Errorf("%s/conf.toml does not set VSOP87.directory", confPath)
	}
	config = cfg
	cfgLoaded = true
	return config, nil
}
