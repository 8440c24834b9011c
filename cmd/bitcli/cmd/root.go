// Package cmd implements the bitcli commands: parsing, evaluating and
// converting bit arrays from the command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is the version of the binary, set by main.
	Version = "0.0.0"

	// Commit is the commit hash of the binary, set by main.
	Commit = ""

	cfg         = defaultConfig()
	logger      *zap.Logger
	printConfig bool
)

var rootCmd = &cobra.Command{
	Use:           "bitcli",
	Short:         "Inspect, evaluate and convert bit arrays",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		if printConfig {
			spew.Dump(cfg)
			os.Exit(0)
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}

		cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				logger.Debug("flag overrides config", zap.String("flag", f.Name), zap.String("value", f.Value.String()))
			}
		})
		return nil
	},
}

func init() {
	setFlags(rootCmd, cfg)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s+%s", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bitcli:", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid `loglevel`; expected: debug, info, warn or error, given: %s", level)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
