// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Definitions maps category identifiers to categories, remembering the
// order in which categories were first added. Every traversal of the
// collection follows that order, so derived output is deterministic.
type Definitions struct {
	order []string
	byID  map[string]*Category
}

// NewDefinitions returns an empty collection.
func NewDefinitions() *Definitions {
	return &Definitions{byID: make(map[string]*Category)}
}

// Put adds c under c.ID. A category with the same ID is replaced in place.
func (d *Definitions) Put(c *Category) {
	if d.byID == nil {
		d.byID = make(map[string]*Category)
	}
	if _, ok := d.byID[c.ID]; !ok {
		d.order = append(d.order, c.ID)
	}
	d.byID[c.ID] = c
}

// Get returns the category with the given ID.
func (d *Definitions) Get(id string) (*Category, bool) {
	if d == nil {
		return nil, false
	}
	c, ok := d.byID[id]
	return c, ok
}

// Categories returns all categories in insertion order.
func (d *Definitions) Categories() []*Category {
	if d == nil {
		return nil
	}
	out := make([]*Category, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}

// Len returns the number of categories.
func (d *Definitions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}
