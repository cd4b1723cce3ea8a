package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"rfp-backend/internal/shared/telemetry"
)

//go:embed data/catalog.json
var defaultCatalog embed.FS

// catalogFile mirrors the on-disk catalog schema.
type catalogFile struct {
	Products []rawItem `json:"products"`
}

type rawItem struct {
	SKU       string   `json:"sku"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	UnitPrice float64  `json:"unit_price"`
	Keywords  []string `json:"keywords"`
}

// Load reads the catalog from path, or from the embedded default catalog when
// path is empty. Malformed entries are skipped with a logged warning; a file
// that is missing, unparseable, or yields no valid items is a fatal error and
// the process must not serve requests.
func Load(path string) (*Catalog, error) {
	var (
		raw []byte
		err error
		src string
	)
	if strings.TrimSpace(path) == "" {
		raw, err = defaultCatalog.ReadFile("data/catalog.json")
		src = "embedded"
	} else {
		raw, err = os.ReadFile(path)
		src = path
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", src, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", src, err)
	}

	items := make([]Item, 0, len(file.Products))
	for i, entry := range file.Products {
		if reason := validate(entry); reason != "" {
			telemetry.Warn("catalog.entry_skipped", map[string]any{
				"source": src,
				"index":  i,
				"sku":    entry.SKU,
				"reason": reason,
			})
			continue
		}
		items = append(items, Item{
			SKU:       strings.TrimSpace(entry.SKU),
			Name:      strings.TrimSpace(entry.Name),
			Category:  strings.TrimSpace(entry.Category),
			UnitPrice: entry.UnitPrice,
			Keywords:  entry.Keywords,
		})
	}

	cat, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", src, err)
	}

	telemetry.Info("catalog.loaded", map[string]any{
		"source": src,
		"items":  cat.Len(),
	})
	return cat, nil
}

func validate(entry rawItem) string {
	switch {
	case strings.TrimSpace(entry.SKU) == "":
		return "missing sku"
	case strings.TrimSpace(entry.Name) == "":
		return "missing name"
	case entry.UnitPrice <= 0:
		return "non-positive unit_price"
	case len(entry.Keywords) == 0:
		return "missing keywords"
	default:
		return ""
	}
}
