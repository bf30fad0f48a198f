// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mantis CLI: corpus loading,
// ranked search with sector classification, and offline topic-count
// calibration.
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

// rootCmd is the base command for the mantis CLI.
var rootCmd = &cobra.Command{
	Use:   "mantis",
	Short: "Rank and classify academic papers by topic relevance and citation access-ease",
	Long: `mantis ranks papers from a static corpus against a text query by combining
two signals: LDA topic-model relevance and a citation-derived Pennant
(access-ease) score. Each result is classified into a relational sector
(successor, peer, predecessor) with 2-D plot coordinates for visualization.

Load a corpus once with 'mantis load', then query it with 'mantis search'.
'mantis calibrate' suggests a topic count for a corpus size.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mantis.yaml or ~/.config/mantis/config.yaml)")
	rootCmd.PersistentFlags().String("db", "corpus/mantis.db", "corpus database path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mantis")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mantis"))
		}
	}

	viper.SetEnvPrefix("MANTIS")
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
