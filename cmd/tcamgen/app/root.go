// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

// Package app wires the tcamgen command-line interface: a cobra root
// command with persistent flags bound through viper, mirroring the
// config-file/env/flag precedence the rest of this module's dependency
// stack was chosen from.
package app

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pktclass/tcamgen/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tcamgen",
	Short: "Compile 5-tuple rules with port ranges into TCAM ternary entries",
	Long:  `tcamgen loads 5-tuple packet-classification rules, expands their port ranges into ternary match patterns, and writes TCAM-loadable output files.`,
}

// Execute runs the root command. It is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tcamgen.yaml)")
	flags.BoolP("debug", "D", false, "enable debug logging")
	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newCompletionCmd(os.Stdout))
	rootCmd.SetOut(os.Stderr)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tcamgen")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("tcamgen")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	logging.SetDebug(viper.GetBool("debug"))
	logrus.SetLevel(logging.DefaultLogger.GetLevel())
}
