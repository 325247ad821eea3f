// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch loads category documents and templates from local files
// and remote URLs.
//
// Remote requests are dispatched at most once per configured delay and may
// overlap in flight. A failed source never cancels its siblings; every
// outcome is reported back in input order.
package fetch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/pdiddy/taglist/internal/httputil"
	"github.com/pdiddy/taglist/pkg/types"
)

// SourceKind classifies a source string.
type SourceKind int

const (
	KindFile SourceKind = iota
	KindURL
)

func (k SourceKind) String() string {
	if k == KindURL {
		return "url"
	}
	return "file"
}

// Classify reports whether source is an http(s) URL or a local path and
// returns it trimmed.
func Classify(source string) (SourceKind, string) {
	source = strings.TrimSpace(source)
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return KindURL, source
	}
	return KindFile, source
}

// Result is the outcome of loading one source.
type Result struct {
	Source string
	Text   string
	Err    error
}

// BatchResult holds the outcome of a batch fetch.
type BatchResult struct {
	Fetched int
	Failed  int
	// Results has one entry per input source, in input order.
	Results []Result
}

// Total returns the number of sources processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Failed
}

// HasFailures reports whether any source failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// One loads a single source without rate limiting.
func One(ctx context.Context, client *http.Client, source string, cfg types.FetchConfig) (string, error) {
	kind, src := Classify(source)
	if src == "" {
		return "", fmt.Errorf("empty source")
	}
	if kind == KindURL {
		return httputil.GetText(ctx, client, src, cfg.HTTPConfig)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}
	return string(data), nil
}

// Batch loads every source. URL dispatches are spaced by cfg.Delay and at
// most cfg.Concurrency requests are in flight (0 means no cap). Local
// files are read without spacing. Per-source status and a summary line
// are printed to w once all sources have finished.
func Batch(ctx context.Context, client *http.Client, sources []string, cfg types.FetchConfig, w io.Writer) BatchResult {
	limit := rate.Inf
	if cfg.Delay > 0 {
		limit = rate.Every(cfg.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	results := make([]Result, len(sources))
	var g errgroup.Group
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for i, source := range sources {
		i, source := i, source
		results[i].Source = source
		if kind, _ := Classify(source); kind == KindURL {
			if err := limiter.Wait(ctx); err != nil {
				results[i].Err = fmt.Errorf("waiting to fetch %s: %w", source, err)
				continue
			}
		}
		g.Go(func() error {
			text, err := One(ctx, client, source, cfg)
			results[i].Text = text
			results[i].Err = err
			return nil
		})
	}
	g.Wait()

	var out BatchResult
	out.Results = results
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", r.Source, r.Err)
			out.Failed++
			continue
		}
		fmt.Fprintf(w, "fetched: %s\n", r.Source)
		out.Fetched++
	}
	fmt.Fprintf(w, "\nFetch summary: %d fetched, %d failed (total: %d)\n",
		out.Fetched, out.Failed, out.Total())
	return out
}

// Lines splits a source listing into one source per line. Blank lines and
// lines starting with '#' are skipped.
func Lines(text string) []string {
	var sources []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	return sources
}
