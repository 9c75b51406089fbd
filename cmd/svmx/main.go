// Package main is the entry point for the svmx CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/svmx-ml/svmx/internal/export"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the svmx CLI.
var rootCmd = &cobra.Command{
	Use:   "svmx",
	Short: "Convert trained SVM classifiers between .svmx artifacts and JSON",
	Long: `svmx loads a trained support-vector-machine classifier from a .svmx
binary artifact and re-exports its numeric parameters (support vectors,
dual coefficients, intercept, kernel hyperparameters) as a plain JSON
file for consumption by a browser or other runtime environment.

The export subcommand performs the conversion; inspect summarizes an
artifact without converting it; pack rebuilds an artifact from an
exported JSON record.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./svmx.yaml or ~/.config/svmx/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svmx")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svmx"))
		}
	}

	viper.SetEnvPrefix("SVMX")
	viper.AutomaticEnv()

	viper.SetDefault("input", export.DefaultArtifactPath)
	viper.SetDefault("output", export.DefaultOutputPath)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
