// Package catalog holds the in-memory product dataset and the homepage
// grouping metadata. It is pure data: decoding, lookup and group resolution.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Product is a single catalog item. Products are immutable once loaded.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"product_name"`
	Description string   `json:"product_description"`
	Price       float64  `json:"price"`
	Article     Article  `json:"article"`
	Images      []string `json:"images"`
}

// HasImages reports whether the product has at least one image reference.
func (p Product) HasImages() bool {
	return len(p.Images) > 0
}

// HomeGroup is a named, ordered subset of products shown on the homepage.
// Items holds product ids in display order.
type HomeGroup struct {
	Title string `json:"title"`
	Items []int  `json:"items"`
}

// Main is the homepage section of the catalog document.
type Main struct {
	Groups []HomeGroup `json:"groups"`
}

// Document is the catalog document as served by the data source.
type Document struct {
	Stock []Product `json:"stock"`
	Main  Main      `json:"main"`
}

// Article is a product article number. Datasets carry it either as a JSON
// string or as a bare number; both decode to the same text.
type Article string

// UnmarshalJSON accepts a string, a number or null.
func (a *Article) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Article(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("article must be a string or a number: %w", err)
	}
	*a = Article(n.String())
	return nil
}

// String returns the article text.
func (a Article) String() string {
	return string(a)
}
