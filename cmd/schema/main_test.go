package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteSchemas(t *testing.T) {
	dir := t.TempDir()
	for _, doc := range documents {
		path := filepath.Join(dir, "nested", doc.file)
		if err := writeSchema(path, buildSchema(doc)); err != nil {
			t.Fatalf("writeSchema(%s) error = %v", doc.file, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var got map[string]any
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("%s is not JSON: %v", doc.file, err)
		}
		if got["title"] != doc.title {
			t.Errorf("%s title = %v, want %q", doc.file, got["title"], doc.title)
		}
		if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
			t.Errorf("%s temp file left behind", doc.file)
		}
	}
}
