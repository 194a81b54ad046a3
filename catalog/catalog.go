// Package catalog holds the static product catalog bundled with the binary.
// It is loaded once at startup and never mutated; browsing, filtering and
// sorting all run synchronously over the in-memory list.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/imadityagolu/mct-5-amazone/models"
)

//go:embed products.json
var productsJSON []byte

// Sort keys accepted by Search. Relevance is the catalog's natural order and
// applies no sorting.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// Price band labels. The first two are inclusive on both ends, the last is
// open-ended.
const (
	PriceBandLow  = "0-5000"
	PriceBandMid  = "5001-10000"
	PriceBandHigh = "10001+"
)

type Catalog struct {
	products []models.Product
}

// New parses the embedded catalog.
func New() (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("parsing bundled catalog: %w", err)
	}
	return &Catalog{products: products}, nil
}

// NewFromProducts builds a catalog from an explicit list, keeping the given
// order as its natural order.
func NewFromProducts(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// Products returns the full catalog in natural order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a single product.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Query selects and orders catalog entries. Zero-value fields apply no
// filtering; filters compose with AND and the sort runs last.
type Query struct {
	Search    string
	Category  string
	PriceBand string
	Sort      string
}

// Search applies the query over the full catalog.
func (c *Catalog) Search(q Query) []models.Product {
	result := make([]models.Product, 0, len(c.products))
	needle := strings.ToLower(q.Search)

	for _, p := range c.products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Type), needle) {
			continue
		}
		if q.Category != "" && p.Type != q.Category {
			continue
		}
		if !inPriceBand(p.Price, q.PriceBand) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	}
	// SortRelevance and unknown keys keep the natural order.

	return result
}

func inPriceBand(price float64, band string) bool {
	switch band {
	case PriceBandLow:
		return price >= 0 && price <= 5000
	case PriceBandMid:
		return price >= 5001 && price <= 10000
	case PriceBandHigh:
		return price >= 10001
	default:
		return true
	}
}
