// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "taglist/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" validate:"required"`

	// MaxRetries is the number of retries on HTTP 429 (0 = default).
	MaxRetries int `json:"max_retries" yaml:"max_retries" validate:"gte=0"`
}

// FetchConfig holds settings for loading definitions and templates from URLs.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Delay is the minimum spacing between two consecutive request
	// dispatches, respecting the remote rate limit.
	Delay time.Duration `json:"delay" yaml:"delay" validate:"gte=0"`

	// Concurrency caps requests in flight (0 = one per source).
	Concurrency int `json:"concurrency" yaml:"concurrency" validate:"gte=0"`
}

// OutputFormat selects the export format.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// Config groups everything a build needs: where the template and the
// category definitions come from, how to fetch them, and where to write.
type Config struct {
	// Template is a file path or URL of the documentation template.
	Template string `json:"template" yaml:"template" validate:"required"`

	// Definitions lists file paths or URLs of category documents.
	Definitions []string `json:"definitions" yaml:"definitions" validate:"required,min=1,dive,required"`

	// Output is the rendered output path; empty or "-" writes to stdout.
	Output string `json:"output" yaml:"output"`

	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
}
