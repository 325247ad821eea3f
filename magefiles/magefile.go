//go:build mage

// Package main contains Mage build targets for taglist developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "taglist"
	cmdPkg  = "./cmd/taglist"
)

// starterFiles seeds a working directory with a config, one category, and
// a template so that `mage docs` produces output immediately.
var starterFiles = map[string]string{
	"taglist.yaml": `template: templates/tags.tmpl
definitions:
  - definitions/genre.toml
output: docs/tags.md
fetch:
  delay: 1s
  timeout: 30s
  user_agent: taglist/0.1
`,
	"definitions/genre.toml": `["genre/"]
name = "Genre"
description = "What kind of story the page tells."
max = 2

[horror]
description = "Intended to frighten."
conflicts = ["comedy"]

[comedy]
description = "Intended to amuse."
`,
	"templates/tags.tmpl": `{{ range .Categories }}# {{ or .Name (display .ID) }}
{{ range .Tags }}
* **{{ .Name }}**: {{ .Description }}{{ range .RelationshipStrings }}
  * {{ . }}{{ end }}
{{ end }}
{{ end }}`,
}

// Init writes a starter config, category, and template. Existing files
// are left alone.
func Init() error {
	for path, content := range starterFiles {
		if _, err := os.Stat(path); err == nil {
			fmt.Println("   exists:", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Project initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Docs builds the binary and renders the documentation configured in
// taglist.yaml.
func Docs() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "build")
}

// Stats prints project metrics: Go production/test LOC and the number of
// tags defined under definitions/.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	tables, err := countTables("definitions")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Tables (definitions):           %d\n", tables)
	return nil
}

// countGoLines counts non-blank lines in Go files, skipping _examples.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countTables counts TOML table headers in .toml files under root.
func countTables(root string) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".toml" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "[") {
				total++
			}
		}
		return nil
	})
	return total, err
}
