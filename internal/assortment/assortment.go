// Package assortment implements the full-assortment filter and sort
// pipeline. Apply is pure: it never mutates its input.
package assortment

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dbmrq/vitrina/internal/catalog"
)

// SortMode orders the assortment by price.
type SortMode string

const (
	// SortNone keeps dataset order.
	SortNone SortMode = "none"
	// SortAsc orders by ascending price.
	SortAsc SortMode = "asc"
	// SortDesc orders by descending price.
	SortDesc SortMode = "desc"
)

// SortModes lists the modes in selector order.
var SortModes = []SortMode{SortNone, SortAsc, SortDesc}

// IsValid returns true if the mode is known.
func (m SortMode) IsValid() bool {
	switch m {
	case SortNone, SortAsc, SortDesc:
		return true
	default:
		return false
	}
}

// String returns the string representation of the mode.
func (m SortMode) String() string {
	return string(m)
}

// Label returns the selector caption for the mode.
func (m SortMode) Label() string {
	switch m {
	case SortAsc:
		return "Сначала дешевле"
	case SortDesc:
		return "Сначала дороже"
	default:
		return "По умолчанию"
	}
}

// Next returns the mode after m in selector order, wrapping around.
func (m SortMode) Next() SortMode {
	i := slices.Index(SortModes, m)
	return SortModes[(i+1)%len(SortModes)]
}

// ParseSortMode parses a selector value. The empty string is SortNone.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return SortNone, nil
	}
	if !m.IsValid() {
		return SortNone, fmt.Errorf("unknown sort mode %q (want none, asc or desc)", s)
	}
	return m, nil
}

// Apply filters products by query and orders them by mode. The query matches
// case-insensitively as a substring of the product name or description; an
// empty query matches everything. The sort is stable, so price ties keep
// dataset order. The result is always a new slice.
func Apply(products []catalog.Product, query string, mode SortMode) []catalog.Product {
	out := Filter(products, query)

	switch mode {
	case SortAsc:
		slices.SortStableFunc(out, func(a, b catalog.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortDesc:
		slices.SortStableFunc(out, func(a, b catalog.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}
	return out
}

// Filter returns the products matching query in their original order.
func Filter(products []catalog.Product, query string) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	if query == "" {
		return append(out, products...)
	}

	fold := cases.Fold()
	term := fold.String(query)
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), term) || strings.Contains(fold.String(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}
