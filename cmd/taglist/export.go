// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taglist/internal/export"
	"github.com/pdiddy/taglist/internal/session"
	"github.com/pdiddy/taglist/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the documented taxonomy as YAML or JSON",
	Long: `Export loads every definition document, derives the relationship sentences,
and writes categories, sections, and tags with their sentences for use by
other tools.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output path (default stdout)")
	exportCmd.Flags().StringP("format", "f", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	s := session.New()
	report := loadDefinitions(cmd.Context(), s, newClient(cfg), cfg, os.Stderr)

	var buf bytes.Buffer
	if err := export.Write(&buf, s.Definitions(), types.OutputFormat(format)); err != nil {
		return err
	}
	if err := writeOutput(cfg.Output, buf.Bytes(), os.Stdout); err != nil {
		return err
	}
	if report.HasErrors() {
		return fmt.Errorf("%d definition document(s) failed to load", len(report.Errors))
	}
	return nil
}
