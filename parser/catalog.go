package parser

import (
	"encoding/json"
)

// Catalog is the ordered set of successfully parsed endpoints of one pass.
// Entries are keyed by path. Order is the document order of each path's
// first successful appearance; a later parse of the same path replaces the
// record in place.
type Catalog struct {
	order  []string
	byPath map[string]Endpoint
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{byPath: make(map[string]Endpoint)}
}

// put stores ep, returning true if it replaced an earlier record.
func (c *Catalog) put(ep Endpoint) bool {
	if _, exists := c.byPath[ep.Path]; exists {
		c.byPath[ep.Path] = ep
		return true
	}
	c.order = append(c.order, ep.Path)
	c.byPath[ep.Path] = ep
	return false
}

// Len returns the number of endpoints.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Get returns the endpoint for path.
func (c *Catalog) Get(path string) (Endpoint, bool) {
	if c == nil {
		return Endpoint{}, false
	}
	ep, ok := c.byPath[path]
	return ep, ok
}

// Paths returns the endpoint paths in catalog order.
func (c *Catalog) Paths() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Endpoints returns the endpoints in catalog order.
func (c *Catalog) Endpoints() []Endpoint {
	if c == nil {
		return nil
	}
	out := make([]Endpoint, 0, len(c.order))
	for _, p := range c.order {
		out = append(out, c.byPath[p])
	}
	return out
}

// MarshalJSON encodes the catalog as an ordered array of endpoints.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	eps := c.Endpoints()
	if eps == nil {
		eps = []Endpoint{}
	}
	return json.Marshal(eps)
}

// MarshalYAML encodes the catalog as an ordered sequence of endpoints.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.Endpoints(), nil
}
