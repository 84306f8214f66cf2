package catalog

import (
	"encoding/json"
	"errors"
	"math"

	verrors "github.com/dbmrq/vitrina/internal/errors"
)

// Decode parses a catalog document. Any structural problem is returned as a
// fatal load error: malformed JSON, a missing stock array, duplicate product
// ids or invalid prices.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, verrors.MalformedDocument(err)
	}
	if doc.Stock == nil {
		return nil, verrors.MalformedDocument(errors.New(`missing "stock" array`))
	}

	seen := make(map[int]struct{}, len(doc.Stock))
	for _, p := range doc.Stock {
		if _, dup := seen[p.ID]; dup {
			return nil, verrors.InvalidProduct(p.ID, "duplicate id")
		}
		seen[p.ID] = struct{}{}

		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, verrors.InvalidProduct(p.ID, "price must be a non-negative number")
		}
	}

	return &doc, nil
}
