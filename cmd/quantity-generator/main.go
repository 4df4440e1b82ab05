// Command quantity-generator generates dimension packages from YAML schemas
// and evaluates quantities against the built-in registry.
package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	envPrefix  = "QUANTITYGEN"
	configName = ".quantitygen"
)

func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)

	rootCmd := newRootCmd(viper.New())
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	defer klog.Flush()

	if err := rootCmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "quantity-generator",
		Short:        "Compile-time dimensional analysis code generator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, configFile, cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default "+configName+".yaml in the working directory)")

	rootCmd.AddCommand(genCmd(v))
	rootCmd.AddCommand(checkCmd(v))
	rootCmd.AddCommand(graphCmd(v))
	rootCmd.AddCommand(inspectCmd(v))
	rootCmd.AddCommand(fmtCmd(v))
	rootCmd.AddCommand(unitsCmd(v))
	rootCmd.AddCommand(convertCmd(v))
	rootCmd.AddCommand(evalCmd(v))

	return rootCmd
}

// loadConfig layers flags over QUANTITYGEN_* environment variables over the
// config file. Flag names map to keys as is; dashes become underscores in
// environment variable names.
func loadConfig(v *viper.Viper, configFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError

	switch {
	case err == nil:
		klog.V(1).InfoS("Loaded config file", "path", v.ConfigFileUsed())
	case errors.As(err, &notFound):
	default:
		return err
	}

	return v.BindPFlags(flags)
}
