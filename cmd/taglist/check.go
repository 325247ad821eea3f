// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taglist/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate definition documents without rendering",
	Long: `Check loads every definition document and reports syntax and schema
errors. It exits non-zero when any document is invalid.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	s := session.New()
	report := loadDefinitions(cmd.Context(), s, newClient(cfg), cfg, os.Stdout)
	for _, id := range report.Loaded {
		fmt.Fprintf(os.Stdout, "ok:      %s\n", id)
	}
	if report.HasErrors() {
		return fmt.Errorf("%d definition document(s) invalid", len(report.Errors))
	}
	return nil
}
