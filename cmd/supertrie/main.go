// Command supertrie builds, renders and cross-checks superset tries.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/exacttw/supertrie"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion       = "unknown"
	cfgFile            string
	logLevel           string
	envPrefix          = "SUPERTRIE"
	defaultCfgFileName = ".supertrie"
	logger             = supertrie.NoopLogger()
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:           "supertrie",
	Short:         "Build, render and verify bounded superset tries",
	Version:       buildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(defaultCfgFileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// a missing config file is fine, flags and env still apply
	_ = v.ReadInConfig()

	bindFlags(rootCmd.PersistentFlags(), v)
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd.Flags(), v)
	}

	initLogger()
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
}

func initLogger() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelError
	}
	logger = supertrie.NewTextLogger(level)
}

// bindFlags applies viper values to flags the user did not set.
func bindFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = flags.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", defaultCfgFileName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newLatexCmd(), newGenCmd(), newCheckCmd())
}

func main() {
	initFlags()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
