// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns one TOML tag category document into a validated
// types.Category.
//
// Document layout:
//
//	["category/"]          # exactly one key ending in "/"
//	name = "Category"
//	requires = ["tag-1"]
//
//	[tag-1]                # every other top-level table is a loose tag
//	description = "..."
//	conflicts = ["tag-2", ["tag-3", "other/"]]
//
//	[[section]]            # ordered sections
//	name = "A section"
//	[section.tag-3]        # tags of the most recent section
package parse

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/taglist/internal/relationship"
	"github.com/pdiddy/taglist/pkg/types"
)

const (
	sectionKey     = "section"
	permissionsKey = "permissions"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Category parses and validates a single category document. It returns a
// *SyntaxError when text is not valid TOML and a *SchemaError when the
// document does not describe exactly one well-formed category.
func Category(text string) (*types.Category, error) {
	data := []byte(text)

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, syntaxError(err)
	}

	p := &parser{order: recordKeyOrder(data), names: make(map[string]string)}
	return p.category(doc)
}

func syntaxError(err error) error {
	se := &SyntaxError{Message: err.Error(), err: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		se.Line, se.Column = de.Position()
	}
	return se
}

type parser struct {
	id    string
	order keyOrder

	// names maps every tag name to where it was defined.
	names map[string]string
}

func (p *parser) fail(format string, args ...any) error {
	return &SchemaError{Category: p.id, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) category(doc map[string]any) (*types.Category, error) {
	var ids []string
	for k := range doc {
		if strings.HasSuffix(k, types.CategoryMarker) {
			ids = append(ids, k)
		}
	}
	sort.Strings(ids)
	switch len(ids) {
	case 0:
		return nil, p.fail("no category configured: one top-level key must end in %q", types.CategoryMarker)
	case 1:
	default:
		return nil, p.fail("more than one category configured: %s", strings.Join(ids, ", "))
	}
	p.id = ids[0]

	body, ok := doc[p.id].(map[string]any)
	if !ok {
		return nil, p.fail("category must be a table, got %s", typeName(doc[p.id]))
	}
	if p.id == types.CategoryMarker {
		return nil, p.fail("category name is empty")
	}

	c := &types.Category{ID: p.id, Tags: []*types.Tag{}, Sections: []*types.Section{}}
	for _, k := range sortedKeys(body) {
		v := body[k]
		var err error
		switch k {
		case "name":
			c.Name, err = p.str(p.id, k, v)
		case "description":
			c.Description, err = p.str(p.id, k, v)
		case "max":
			n, ok := v.(int64)
			if !ok {
				return nil, p.fail("max must be an integer, got %s", typeName(v))
			}
			m := int(n)
			c.Max = &m
		case permissionsKey:
			c.Permissions, err = p.permissions(p.id, v)
		default:
			err = p.relationship(&c.Relationships, p.id, k, v)
		}
		if err != nil {
			return nil, err
		}
	}

	isTag := func(k string, _ any) bool { return k != p.id && k != sectionKey }
	for _, name := range orderedKeys(doc, p.order.root, isTag) {
		t, err := p.tag(name, doc[name], "category")
		if err != nil {
			return nil, err
		}
		c.Tags = append(c.Tags, t)
	}

	if raw, ok := doc[sectionKey]; ok {
		sections, err := p.sections(raw)
		if err != nil {
			return nil, err
		}
		c.Sections = sections
	}

	if err := p.check(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) sections(raw any) ([]*types.Section, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, p.fail("section must be an array of tables ([[section]]), got %s", typeName(raw))
	}
	sections := make([]*types.Section, 0, len(list))
	for i, entry := range list {
		body, ok := entry.(map[string]any)
		if !ok {
			return nil, p.fail("section %d must be a table, got %s", i+1, typeName(entry))
		}
		where := fmt.Sprintf("section %d", i+1)
		s := &types.Section{Tags: []*types.Tag{}}
		for _, k := range sortedKeys(body) {
			v := body[k]
			var err error
			switch k {
			case "name":
				s.Name, err = p.str(where, k, v)
			case "description":
				s.Description, err = p.str(where, k, v)
			default:
				if _, isTable := v.(map[string]any); isTable {
					continue
				}
				err = p.relationship(&s.Relationships, where, k, v)
			}
			if err != nil {
				return nil, err
			}
		}
		if s.Name != "" {
			where = fmt.Sprintf("section %q", s.Name)
		}
		isTable := func(_ string, v any) bool {
			_, ok := v.(map[string]any)
			return ok
		}
		for _, name := range orderedKeys(body, p.order.section(i), isTable) {
			t, err := p.tag(name, body[name], where)
			if err != nil {
				return nil, err
			}
			s.Tags = append(s.Tags, t)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func (p *parser) tag(name string, raw any, where string) (*types.Tag, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, p.fail("unexpected value for %q: tags must be tables, got %s", name, typeName(raw))
	}
	if strings.HasSuffix(name, types.CategoryMarker) {
		return nil, p.fail("tag %q must not end in %q", name, types.CategoryMarker)
	}
	if prev, dup := p.names[name]; dup {
		return nil, p.fail("tag %q defined in %s and again in %s", name, prev, where)
	}
	p.names[name] = where

	t := &types.Tag{Name: name}
	for _, k := range sortedKeys(body) {
		v := body[k]
		var err error
		switch k {
		case "description":
			t.Description, err = p.str(name, k, v)
		case permissionsKey:
			t.Permissions, err = p.permissions(name, v)
		default:
			err = p.relationship(&t.Relationships, name, k, v)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// relationship parses the relationship list stored under key. Any key
// that is not a declarable kind is rejected.
func (p *parser) relationship(decl *types.Relationships, owner, key string, raw any) error {
	kind := types.RelationshipKind(key)
	if kind == types.Superseded {
		return p.fail("%s: %q cannot be declared, it is derived from %q", owner, key, types.Supersedes)
	}
	if !isDeclarable(kind) {
		return p.fail("%s: unknown property %q", owner, key)
	}

	items, ok := raw.([]any)
	if !ok {
		return p.fail("%s: %s must be a list, got %s", owner, key, typeName(raw))
	}
	list := make(types.RelationshipList, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			ref, err := p.reference(owner, key, v)
			if err != nil {
				return err
			}
			list = append(list, types.Plain(ref))
		case []any:
			if relationship.IsFlat(kind) {
				return p.fail("%s: %s cannot contain nested lists", owner, key)
			}
			if len(v) == 0 {
				return p.fail("%s: %s contains an empty nested list", owner, key)
			}
			group := make([]types.Reference, 0, len(v))
			for _, member := range v {
				s, ok := member.(string)
				if !ok {
					return p.fail("%s: %s nested list entries must be strings, got %s", owner, key, typeName(member))
				}
				ref, err := p.reference(owner, key, s)
				if err != nil {
					return err
				}
				group = append(group, ref)
			}
			list = append(list, types.AnyOf(group...))
		default:
			return p.fail("%s: %s entries must be strings or lists of strings, got %s", owner, key, typeName(item))
		}
	}
	decl.Set(kind, list)
	return nil
}

func (p *parser) reference(owner, key, s string) (types.Reference, error) {
	if strings.TrimSpace(s) == "" || s == types.CategoryMarker {
		return "", p.fail("%s: %s contains an empty reference", owner, key)
	}
	return types.Reference(s), nil
}

func (p *parser) permissions(owner string, raw any) (*types.Permissions, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, p.fail("%s: permissions must be a table, got %s", owner, typeName(raw))
	}
	perm := &types.Permissions{}
	for _, k := range sortedKeys(body) {
		s, err := p.str(owner, permissionsKey+"."+k, body[k])
		if err != nil {
			return nil, err
		}
		switch k {
		case "add":
			perm.Add = types.PermissionGroup(s)
		case "remove":
			perm.Remove = types.PermissionGroup(s)
		case "modify":
			perm.Modify = types.PermissionGroup(s)
		default:
			return nil, p.fail("%s: unknown permission %q", owner, k)
		}
	}
	return perm, nil
}

// check runs struct-tag validation over the category and its tags.
func (p *parser) check(c *types.Category) error {
	if err := validate.Struct(c); err != nil {
		return p.fail("%s", describe(err))
	}
	for _, t := range c.AllTags() {
		if err := validate.Struct(t); err != nil {
			return p.fail("%s: %s", t.Name, describe(err))
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s: %v fails %s", fe.Namespace(), fe.Value(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func (p *parser) str(owner, key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", p.fail("%s: %s must be a string, got %s", owner, key, typeName(v))
	}
	return s, nil
}

func isDeclarable(kind types.RelationshipKind) bool {
	for _, k := range types.DeclarableKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	case nil:
		return "nothing"
	}
	return fmt.Sprintf("%T", v)
}
