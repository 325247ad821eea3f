// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/taglist/internal/fetch"
	"github.com/pdiddy/taglist/internal/session"
	"github.com/pdiddy/taglist/pkg/types"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultDelay       = 1 * time.Second
	defaultConcurrency = 4
	defaultUserAgent   = "taglist/0.1"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// setting returns the flag value when the user set it, otherwise the
// viper value for key.
func setting(cmd *cobra.Command, flag, key string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}

// loadConfig assembles the run configuration. When needTemplate is false
// the template source is not required.
func loadConfig(cmd *cobra.Command, needTemplate bool) (types.Config, error) {
	cfg := types.Config{
		Template:    setting(cmd, "template", "template"),
		Definitions: viper.GetStringSlice("definitions"),
		Output:      setting(cmd, "output", "output"),
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:    viper.GetDuration("fetch.timeout"),
				UserAgent:  viper.GetString("fetch.user_agent"),
				MaxRetries: viper.GetInt("fetch.max_retries"),
			},
			Delay:       viper.GetDuration("fetch.delay"),
			Concurrency: viper.GetInt("fetch.concurrency"),
		},
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = defaultTimeout
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaultUserAgent
	}
	if cfg.Fetch.Delay == 0 {
		cfg.Fetch.Delay = defaultDelay
	}
	if cfg.Fetch.Concurrency == 0 {
		cfg.Fetch.Concurrency = defaultConcurrency
	}

	if list := viper.GetString("definitions_list"); list != "" {
		text, err := fetch.One(cmd.Context(), newClient(cfg), list, cfg.Fetch)
		if err != nil {
			return cfg, fmt.Errorf("loading definitions list: %w", err)
		}
		cfg.Definitions = append(cfg.Definitions, fetch.Lines(text)...)
	}

	var err error
	if needTemplate {
		err = validate.Struct(cfg)
	} else {
		err = validate.StructExcept(cfg, "Template")
	}
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration: %s", describe(err))
	}
	return cfg, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "min":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func newClient(cfg types.Config) *http.Client {
	return &http.Client{Timeout: cfg.Fetch.Timeout}
}

// loadDefinitions fetches and parses every definition source, printing
// each failure to w.
func loadDefinitions(ctx context.Context, s *session.Session, client *http.Client, cfg types.Config, w io.Writer) session.LoadReport {
	report := s.LoadSources(ctx, client, cfg.Definitions, cfg.Fetch, w)
	for _, e := range report.Errors {
		fmt.Fprintf(w, "error:   %v\n", e)
	}
	fmt.Fprintf(w, "Loaded %d categor%s, %d error(s)\n",
		len(report.Loaded), plural(len(report.Loaded), "y", "ies"), len(report.Errors))
	return report
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// writeOutput writes data to path via a temporary file, or to stdout when
// path is empty or "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".taglist-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing output: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
