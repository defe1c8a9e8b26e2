package formats

import "testing"

func TestExtensionsRegistered(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if _, ok := Lookup(ext); !ok {
			t.Errorf("expected parser for %s", ext)
		}
	}
	if _, ok := Lookup(".JSON"); !ok {
		t.Error("lookup should be case-insensitive")
	}
	if _, err := Parse([]byte("{}"), ".txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(".json", ParseJSON)
}

func TestParseJSONAndYAMLAgree(t *testing.T) {
	js := []byte(`{"level_number":4,"grid_width":2,"grid_height":1,"move_count":6,"grid":["bo","s"]}`)
	ym := []byte("level_number: 4\ngrid_width: 2\ngrid_height: 1\nmove_count: 6\ngrid: [bo, s]\n")

	a, err := ParseJSON(js)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	b, err := ParseYAML(ym)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if a.Number != b.Number || a.Width != b.Width || a.Height != b.Height || a.Moves != b.Moves {
		t.Errorf("headers differ: %+v vs %+v", a, b)
	}
	if len(a.Grid) != 2 || len(b.Grid) != 2 || a.Grid[1] != b.Grid[1] {
		t.Errorf("grids differ: %v vs %v", a.Grid, b.Grid)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON([]byte(`{"grid": [1, 2]`)); err == nil {
		t.Error("expected error for malformed json")
	}
}
