package games

import "fmt"

// Catalog is an ordered set of games keyed by identifier. Insertion order is
// preserved so views always see entries in config-scan order.
type Catalog struct {
	order []string
	byID  map[string]Game
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]Game)}
}

// Add appends a game to the catalog. Identifiers must be unique.
func (c *Catalog) Add(g Game) error {
	if g.ID == "" {
		return fmt.Errorf("game with empty identifier")
	}
	if _, ok := c.byID[g.ID]; ok {
		return fmt.Errorf("duplicate game identifier %q", g.ID)
	}
	c.order = append(c.order, g.ID)
	c.byID[g.ID] = g
	return nil
}

func (c *Catalog) Get(id string) (Game, bool) {
	g, ok := c.byID[id]
	return g, ok
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// All returns the games in insertion order. The slice is a copy; the catalog
// itself is never handed out for mutation.
func (c *Catalog) All() []Game {
	out := make([]Game, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns the identifiers in insertion order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Installed counts entries detected from the local configuration, as opposed
// to known-games entries shown for browsing only.
func (c *Catalog) Installed() int {
	n := 0
	for _, id := range c.order {
		if c.byID[id].Installed {
			n++
		}
	}
	return n
}

// Equal reports whether two catalogs hold the same identifiers in the same
// order with equal field values.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, id := range c.order {
		if other.order[i] != id {
			return false
		}
		if c.byID[id] != other.byID[id] {
			return false
		}
	}
	return true
}
