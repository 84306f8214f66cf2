package catalog

import (
	"slices"
)

// Store owns the loaded products and homepage groups. It is built once per
// load and never mutated afterwards.
type Store struct {
	products []Product
	index    map[int]int
	groups   []HomeGroup
}

// NewStore builds a store from a decoded document. A nil document yields an
// empty store.
func NewStore(doc *Document) *Store {
	s := &Store{index: make(map[int]int)}
	if doc == nil {
		return s
	}

	s.products = slices.Clone(doc.Stock)
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	s.groups = slices.Clone(doc.Main.Groups)
	return s
}

// Products returns the products in dataset order. The returned slice is a
// copy; callers may reorder it freely.
func (s *Store) Products() []Product {
	return slices.Clone(s.products)
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}

// Lookup returns the product with the given id.
func (s *Store) Lookup(id int) (Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Groups returns the homepage groups in display order.
func (s *Store) Groups() []HomeGroup {
	return slices.Clone(s.groups)
}

// Resolve maps the ids of a group to products, keeping group order. Ids that
// are not in the catalog are skipped and reported in missing.
func (s *Store) Resolve(g HomeGroup) (items []Product, missing []int) {
	items = make([]Product, 0, len(g.Items))
	for _, id := range g.Items {
		p, ok := s.Lookup(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		items = append(items, p)
	}
	return items, missing
}
