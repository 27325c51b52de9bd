// ABOUTME: Root cobra command and flag bindings
// ABOUTME: Flags, environment, .env and the optional config file all feed one viper instance

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"profile-search-api/pkg/config"
)

func newRootCmd() *cobra.Command {
	return newCommand(config.NewViper())
}

// newCommand builds the command tree around v so every command reads the same settings
func newCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile-search-api",
		Short: "Find public profiles for a username with Sherlock",
		Long: `profile-search-api runs the Sherlock discovery tool for a username and
returns the profile URLs it reports as found. By default it serves the HTTP API;
the search command runs a single lookup from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if file, _ := cmd.Flags().GetString("config"); file != "" {
				v.SetConfigFile(file)
			}
			return config.LoadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default: ./profile-search.yaml)")
	flags.String("sherlock-path", "sherlock", "Sherlock executable name or path")
	flags.Duration("tool-timeout", 120*time.Second, "Maximum duration of one search")
	flags.Int("tool-max-concurrent", 4, "Maximum simultaneous Sherlock processes")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "json", "Log format: json or text")

	bindFlags(v, flags, map[string]string{
		config.KeyToolPath:          "sherlock-path",
		config.KeyToolTimeout:       "tool-timeout",
		config.KeyToolMaxConcurrent: "tool-max-concurrent",
		config.KeyLogLevel:          "log-level",
		config.KeyLogFormat:         "log-format",
	})

	cmd.AddCommand(newServeCmd(v), newSearchCmd(v))
	return cmd
}

// bindFlags binds each config key to the named flag. A flag only overrides
// other sources when it was set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if flag := flags.Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}
