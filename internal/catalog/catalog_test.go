package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	verrors "github.com/dbmrq/vitrina/internal/errors"
)

func loadFixture(t *testing.T) *Document {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "stock.json"))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return doc
}

func TestDecode_Fixture(t *testing.T) {
	doc := loadFixture(t)

	if len(doc.Stock) != 3 {
		t.Fatalf("expected 3 products, got %d", len(doc.Stock))
	}
	if len(doc.Main.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(doc.Main.Groups))
	}

	p := doc.Stock[0]
	if p.Name != "Шкаф Верона" || p.Price != 45990 || len(p.Images) != 3 {
		t.Errorf("unexpected first product: %+v", p)
	}
}

func TestDecode_ArticleForms(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Article
	}{
		{"string", `{"stock":[{"id":1,"article":"A-1"}]}`, "A-1"},
		{"number", `{"stock":[{"id":1,"article":20457}]}`, "20457"},
		{"null", `{"stock":[{"id":1,"article":null}]}`, ""},
		{"absent", `{"stock":[{"id":1}]}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.json))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := doc.Stock[0].Article; got != tt.want {
				t.Errorf("Article = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `<html>oops</html>`},
		{"empty", ``},
		{"missing stock", `{"main":{"groups":[]}}`},
		{"null stock", `{"stock":null}`},
		{"duplicate id", `{"stock":[{"id":1},{"id":1}]}`},
		{"negative price", `{"stock":[{"id":1,"price":-5}]}`},
		{"bad article", `{"stock":[{"id":1,"article":true}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !verrors.IsFatalLoad(err) {
				t.Errorf("expected fatal load error, got %T: %v", err, err)
			}
		})
	}
}

func TestDecode_MissingMainIsEmpty(t *testing.T) {
	doc, err := Decode([]byte(`{"stock":[]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(doc.Main.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(doc.Main.Groups))
	}
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore(loadFixture(t))

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	p, ok := s.Lookup(2)
	if !ok || p.Name != "Стул Лофт" {
		t.Errorf("Lookup(2) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup(99); ok {
		t.Error("Lookup(99) should miss")
	}
}

func TestStore_ProductsIsCopy(t *testing.T) {
	s := NewStore(loadFixture(t))

	products := s.Products()
	products[0], products[2] = products[2], products[0]

	again := s.Products()
	if again[0].ID != 1 || again[2].ID != 3 {
		t.Errorf("store order changed through returned slice: %d, %d", again[0].ID, again[2].ID)
	}
}

func TestStore_Resolve(t *testing.T) {
	s := NewStore(loadFixture(t))
	groups := s.Groups()

	items, missing := s.Resolve(groups[0])
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("Resolve() items = %v, want ids [1 2]", ids(items))
	}
	if len(missing) != 1 || missing[0] != 99 {
		t.Errorf("Resolve() missing = %v, want [99]", missing)
	}

	items, missing = s.Resolve(groups[1])
	if len(items) != 0 || len(missing) != 1 {
		t.Errorf("expected fully unresolved group, got %v / %v", ids(items), missing)
	}
}

func TestNewStore_Nil(t *testing.T) {
	s := NewStore(nil)
	if s.Len() != 0 || len(s.Groups()) != 0 {
		t.Error("expected empty store")
	}
	if _, ok := s.Lookup(1); ok {
		t.Error("expected miss on empty store")
	}
}

func TestDecode_ErrorKind(t *testing.T) {
	_, err := Decode([]byte(`{"stock":[{"id":7},{"id":7}]}`))
	if !errors.Is(err, verrors.ErrData) {
		t.Errorf("duplicate id should be a data error, got %v", err)
	}
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
