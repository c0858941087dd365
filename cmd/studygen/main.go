// Package main is the offline CLI for generating and exporting study sections.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the studygen CLI.
var rootCmd = &cobra.Command{
	Use:   "studygen",
	Short: "Generate Arabic academic study sections from the command line",
	Long: `studygen runs the same section generator as the API without a server or
database. Use generate for a single section, export to render a complete
study to PDF, and guidelines to inspect the writing rules.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./studygen.yaml or ~/.config/studygen/config.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed; 0 seeds from the clock")
	rootCmd.PersistentFlags().String("font", "", "TTF font used for PDF output")

	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("font", rootCmd.PersistentFlags().Lookup("font"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("studygen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "studygen"))
		}
	}

	viper.SetEnvPrefix("STUDYGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
