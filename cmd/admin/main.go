// Command admin runs operator tasks against the Zumech database and
// configuration without going through the HTTP API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/infrastructure/logger"
)

// app carries what every subcommand needs. cfg and log are filled in by
// the root command before a subcommand runs.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
	out io.Writer

	// loadConfig is replaced in tests
	loadConfig func(path string) (*config.Config, error)
}

func main() {
	a := &app{out: os.Stdout, loadConfig: loadConfig}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Zumech operator tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			log, err := logger.New(&logger.Config{
				Level:      a.logLevel,
				Format:     "console",
				Output:     "stderr",
				TimeFormat: "2006-01-02 15:04:05",
			})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: ./config.toml, ./config/config.toml or /etc/zumech/config.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newTokenCmd(a))
	root.AddCommand(newCompaniesCmd(a))
	root.AddCommand(newRenderCmd(a))
	return root
}

// loadConfig reads path when given, otherwise the default search paths
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return config.FromViper(v)
}
