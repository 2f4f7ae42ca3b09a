package datasets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedShards(t *testing.T) {
	for _, category := range []string{CategoryTactics, CategoryOpenings, CategoryEndgames, CategoryFallback} {
		s, err := ByCategory(category)
		if err != nil {
			t.Fatalf("load %s shard: %v", category, err)
		}
		if s.Category != category {
			t.Errorf("shard category mismatch: %q vs %q", s.Category, category)
		}
		if len(s.Rows) == 0 {
			t.Errorf("embedded %s shard is empty", category)
		}
		for _, r := range s.Rows {
			if r.ID == "" {
				t.Errorf("%s shard has a row without an id", category)
			}
			if len(r.Moves) == 0 {
				t.Errorf("%s row %s has no moves", category, r.ID)
			}
		}
	}
}

func TestByCategory_Unknown(t *testing.T) {
	if _, err := ByCategory("bullet"); err == nil {
		t.Errorf("expected error for unknown category")
	}
}

func TestOpenings_LinesStartFromInitialPosition(t *testing.T) {
	s, err := Openings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range s.Rows {
		if r.FEN != "" {
			t.Errorf("opening line %s should not carry a FEN", r.ID)
		}
	}
}

func TestFallback_FilteredByCategory(t *testing.T) {
	rows, err := Fallback(CategoryTactics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected curated tactics fallback rows")
	}
	for _, r := range rows {
		if r.Category != CategoryTactics {
			t.Errorf("row %s has category %q", r.ID, r.Category)
		}
	}

	none, err := Fallback("bullet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no fallback rows for unknown category, got %d", len(none))
	}
}

func TestParseShard_Valid(t *testing.T) {
	s, err := ParseShard([]byte(`{
		"name": "test",
		"category": "tactics",
		"rows": [{"id": "r1", "fen": "6k1/8/8/8/8/8/8/R5K1 w - - 0 1", "moves": ["a1a8"], "rating": 1200}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "test" || len(s.Rows) != 1 {
		t.Errorf("unexpected shard: %+v", s)
	}
	if s.Rows[0].Rating != 1200 {
		t.Errorf("expected rating 1200, got %d", s.Rows[0].Rating)
	}
}

func TestParseShard_SchemaRejections(t *testing.T) {
	cases := map[string]string{
		"not JSON":         `{`,
		"missing name":     `{"category": "tactics", "rows": []}`,
		"bad category":     `{"name": "t", "category": "bullet", "rows": []}`,
		"row without id":   `{"name": "t", "category": "tactics", "rows": [{"moves": ["a1a8"]}]}`,
		"row empty moves":  `{"name": "t", "category": "tactics", "rows": [{"id": "r1", "moves": []}]}`,
		"negative rating":  `{"name": "t", "category": "tactics", "rows": [{"id": "r1", "moves": ["a1a8"], "rating": -5}]}`,
		"short move token": `{"name": "t", "category": "tactics", "rows": [{"id": "r1", "moves": ["x"]}]}`,
	}
	for name, doc := range cases {
		if _, err := ParseShard([]byte(doc)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadShardFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	doc := `{"name": "custom", "category": "endgames", "rows": [{"id": "r1", "fen": "4k3/8/4K3/8/8/8/8/7Q w - - 0 1", "moves": ["h1h8"]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write temp shard: %v", err)
	}

	s, err := LoadShardFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "custom" {
		t.Errorf("expected shard name custom, got %q", s.Name)
	}

	if _, err := LoadShardFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
