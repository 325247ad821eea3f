// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2/unstable"
)

// keyOrder records the order in which names first appear at the top
// level of a document and inside each [[section]]. Decoding into maps
// loses that order; tags are documented in the order they were written.
type keyOrder struct {
	root     []string
	sections [][]string
}

// recordKeyOrder walks the document's expressions. It assumes data has
// already decoded successfully and ignores parser errors.
func recordKeyOrder(data []byte) keyOrder {
	var ko keyOrder
	seen := make(map[string]bool)

	var p unstable.Parser
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyParts(expr.Key())
			if expr.Kind == unstable.ArrayTable && len(table) == 1 && table[0] == sectionKey {
				ko.sections = append(ko.sections, nil)
			}
			ko.note(table, seen)
		case unstable.KeyValue:
			path := append(append([]string{}, table...), keyParts(expr.Key())...)
			ko.note(path, seen)
		}
	}
	return ko
}

func (ko *keyOrder) note(path []string, seen map[string]bool) {
	if len(path) == 0 {
		return
	}
	if path[0] != sectionKey {
		if !seen[path[0]] {
			seen[path[0]] = true
			ko.root = append(ko.root, path[0])
		}
		return
	}
	if len(path) < 2 || len(ko.sections) == 0 {
		return
	}
	last := len(ko.sections) - 1
	key := sectionKey + "\x00" + strconv.Itoa(last) + "\x00" + path[1]
	if seen[key] {
		return
	}
	seen[key] = true
	ko.sections[last] = append(ko.sections[last], path[1])
}

// section returns the recorded order for the i-th [[section]].
func (ko keyOrder) section(i int) []string {
	if i < len(ko.sections) {
		return ko.sections[i]
	}
	return nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// orderedKeys returns the keys of m that satisfy keep, in recorded order
// first and then alphabetically for anything the recorder missed.
func orderedKeys(m map[string]any, order []string, keep func(string, any) bool) []string {
	var out []string
	used := make(map[string]bool)
	for _, k := range order {
		v, ok := m[k]
		if !ok || used[k] || !keep(k, v) {
			continue
		}
		used[k] = true
		out = append(out, k)
	}
	var rest []string
	for k, v := range m {
		if !used[k] && keep(k, v) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
