package catalog

import (
	"errors"
	"strings"
)

// Item is a sellable product from the static catalog.
type Item struct {
	SKU       string   `json:"sku"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	UnitPrice float64  `json:"unitPrice"`
	Keywords  []string `json:"keywords"`
}

// Catalog holds the product list loaded once at startup. It is immutable after
// construction and safe to share across concurrent pipeline runs.
type Catalog struct {
	items []Item
	bySKU map[string]int
}

var (
	ErrEmptyCatalog = errors.New("catalog has no valid items")
	ErrUnknownSKU   = errors.New("unknown sku")
)

// New builds a catalog from the given items, preserving insertion order.
// Keywords are lowercased and deduplicated so matching is case-insensitive.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		bySKU: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, dup := c.bySKU[item.SKU]; dup {
			continue
		}
		item.Keywords = normalizeKeywords(item.Keywords)
		c.bySKU[item.SKU] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Items returns the catalog entries in insertion order. Callers must not
// mutate the returned slice.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup returns the item for a SKU.
func (c *Catalog) Lookup(sku string) (Item, error) {
	idx, ok := c.bySKU[sku]
	if !ok {
		return Item{}, ErrUnknownSKU
	}
	return c.items[idx], nil
}

func normalizeKeywords(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
