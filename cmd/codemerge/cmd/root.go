// Package cmd implements codemerge commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/codemerge/logging"
)

const envPrefix = "CODEMERGE"

// Execute runs the command line with supplied arguments
func Execute(ctx context.Context, version string, args []string) error {
	defer logging.Close()
	root := NewRootCommand(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand creates root command with its own configuration registry
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "codemerge",
		Short: "Merge code model documents",
		Long:  "codemerge reconciles a patch code model into a base code model, one document or a whole document tree at a time.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			logging.Configure(&logging.Config{
				Level:  v.GetString("log-level"),
				Format: v.GetString("log-format"),
				Output: v.GetString("log-output"),
			})
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
			return nil
		},
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is ./.codemerge.yaml when present)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error, disabled")
	flags.String("log-format", "auto", "log format: json, console, auto")
	flags.String("log-output", "stderr", "log output: stderr, stdout, discard or file path")
	cobra.CheckErr(v.BindPFlags(flags))

	root.AddCommand(newMergeCommand(v), newVersionCommand(version))
	return root
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %v: %w", configFile, err)
		}
		return nil
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".codemerge")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
