// Command schema writes JSON Schemas for the game data files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/samdwyer/pixelcrawler/internal/gamedata"
)

type document struct {
	file        string
	title       string
	description string
	value       any
}

var documents = []document{
	{"monsters.schema.json", "Pixel Crawler Monsters", "Validates internal/gamedata/monsters.json", new(gamedata.MonstersFile)},
	{"npcs.schema.json", "Pixel Crawler NPCs", "Validates internal/gamedata/npcs.json", new(gamedata.NPCsFile)},
	{"player.schema.json", "Pixel Crawler Player", "Validates internal/gamedata/player.json", new(gamedata.PlayerFile)},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas to")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for _, doc := range documents {
		if err := writeSchema(filepath.Join(outDir, doc.file), buildSchema(doc)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", doc.file, err)
			os.Exit(1)
		}
	}
}

func buildSchema(doc document) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(doc.value)
	schema.Title = doc.title
	schema.Description = doc.description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
