// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the taglist CLI.
//
// taglist loads tag category definitions, derives a relationship sentence
// for every category, section, and tag, and renders a documentation
// template against the result.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the taglist CLI.
var rootCmd = &cobra.Command{
	Use:   "taglist",
	Short: "Generate tag documentation from category definitions",
	Long: `taglist reads category definition documents (TOML), works out how every
tag relates to every other tag, and renders a documentation template with
one sentence per relationship kind.

Definitions and templates may be local files or http(s) URLs. Defaults come
from taglist.yaml, TAGLIST_* environment variables, or flags.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./taglist.yaml or ~/.config/taglist/taglist.yaml)")
	pf.StringSliceP("definitions", "d", nil, "category definition sources (files or URLs)")
	pf.String("definitions-list", "", "file or URL listing definition sources, one per line")
	pf.Duration("timeout", 0, "HTTP request timeout (default 30s)")
	pf.Duration("delay", 0, "minimum spacing between remote requests (default 1s)")
	pf.Int("concurrency", 0, "remote requests in flight (default 4)")
	pf.String("user-agent", "", "User-Agent header for remote requests")
	pf.Int("max-retries", 0, "retries on HTTP 429 (default 3)")

	for key, flag := range map[string]string{
		"definitions":       "definitions",
		"definitions_list":  "definitions-list",
		"fetch.timeout":     "timeout",
		"fetch.delay":       "delay",
		"fetch.concurrency": "concurrency",
		"fetch.user_agent":  "user-agent",
		"fetch.max_retries": "max-retries",
	} {
		viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("taglist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "taglist"))
		}
	}

	viper.SetEnvPrefix("TAGLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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
