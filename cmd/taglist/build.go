// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/taglist/internal/fetch"
	"github.com/pdiddy/taglist/internal/session"
	"github.com/pdiddy/taglist/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the documentation template",
	Long: `Build loads every definition document, derives the relationship sentences
for all categories, sections, and tags, and renders the template. Documents
that fail to load are reported; the rest are still rendered.

Output goes to --output, or stdout when unset.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("template", "t", "", "template source (file or URL)")
	buildCmd.Flags().StringP("output", "o", "", "output path (default stdout)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	out, report, err := build(cmd.Context(), newClient(cfg), cfg, os.Stderr)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.Output, out, os.Stdout); err != nil {
		return err
	}
	if report.HasErrors() {
		return fmt.Errorf("%d definition document(s) failed to load", len(report.Errors))
	}
	return nil
}

// build runs one full pass: load, document, render. Load errors are
// reported through the returned report; only a template failure is an
// error.
func build(ctx context.Context, client *http.Client, cfg types.Config, w io.Writer) ([]byte, session.LoadReport, error) {
	s := session.New()
	report := loadDefinitions(ctx, s, client, cfg, w)

	tmpl, err := fetch.One(ctx, client, cfg.Template, cfg.Fetch)
	if err != nil {
		return nil, report, fmt.Errorf("loading template: %w", err)
	}

	var buf bytes.Buffer
	if err := s.Render(&buf, cfg.Template, tmpl); err != nil {
		return nil, report, err
	}
	return buf.Bytes(), report, nil
}
