// cmd/gostats/root.go
package gostats

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gostats/internal/config"
	"github.com/mwiater/gostats/internal/logger"
	"github.com/mwiater/gostats/internal/report"
)

var (
	// settings is filled in by loadSettings before any subcommand runs.
	settings config.Config

	log = logger.New(logger.DefaultLevel, "gostats")
)

// rootCmd is the base Cobra command for the gostats application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "gostats",
	Short: "Descriptive statistics over sequences of numbers",
	Long:  `gostats computes the mean, population variance (reported as "stddev"),
median and L2 norm of sequences of numbers read from arguments, stdin or
dataset files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	config.Setup(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (JSON, YAML or TOML)")
	flags.String("log-level", logger.DefaultLevel, "log level ("+strings.Join(logger.Levels, ", ")+")")
	flags.Bool("debug", false, "print the effective configuration and log TUI events to debug.log")
	flags.StringSliceP("stat", "s", nil, "statistic to compute; repeatable or comma-separated (default all)")
	flags.StringP("format", "f", string(report.FormatTable), "output format (table, json, plain)")
	flags.IntP("precision", "p", -1, "digits after the decimal point; negative for shortest")

	bindFlags()
}

// bindFlags binds the persistent flags to their viper keys.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag(config.KeyConfig, flags.Lookup("config"))
	viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	viper.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
	viper.BindPFlag(config.KeyStats, flags.Lookup("stat"))
	viper.BindPFlag(config.KeyFormat, flags.Lookup("format"))
	viper.BindPFlag(config.KeyPrecision, flags.Lookup("precision"))
}

// loadSettings merges the config file, environment and flags into settings
// and configures the logger.
func loadSettings(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := config.ReadFile(v, v.GetString(config.KeyConfig)); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	settings = cfg
	log = logger.New(cfg.LogLevel, "gostats")
	log.Debugf("loaded settings for %q", cmd.CommandPath())
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	return nil
}
