package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "config.toml"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".bitarray")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)
)

type Config struct {
	ConfigFile string `mapstructure:"config"`
	LogLevel   string `mapstructure:"loglevel"`
}

func defaultConfig() *Config {
	return &Config{
		ConfigFile: defaultConfigFile,
		LogLevel:   defaultLogLevel,
	}
}

// loadConfig reads the config file (if present) and unmarshals it on
// top of the defaults. CLI flags are bound to viper, so they take
// priority over the file.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	fileLocation := viper.GetString("config")
	if fileLocation == "" {
		fileLocation = defaultConfigFile
	}

	viper.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if fileLocation != defaultConfigFile {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := defaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&cfg.ConfigFile, "config",
		cfg.ConfigFile, "Path to configuration file")

	flags.StringVar(&cfg.LogLevel, "loglevel",
		cfg.LogLevel, "Log level (debug, info, warn, error)")

	flags.BoolVar(&printConfig, "print-config",
		false, "Print the effective configuration and exit")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}
