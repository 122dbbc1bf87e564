package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by funcops.
const EnvPrefix = "FUNCOPS"

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	return newRootCmd(os.Exit).Execute()
}

// newRootCmd returns the command tree. exit terminates the process once a
// wrapped program has finished.
func newRootCmd(exit func(int)) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "funcops",
		Short:         "Run programs under function decorators",
		Long:          `funcops runs a program with optional timing, tracing and metrics and exits with the program's status.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.funcops/config.yaml)")

	root.AddCommand(newExecCmd(v, exit))
	root.AddCommand(newVersionCmd())
	return root
}

// initConfig wires environment variables and the optional config file into v.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(filepath.Join(home, ".funcops"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
