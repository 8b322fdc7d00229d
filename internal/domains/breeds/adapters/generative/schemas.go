package generative

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema document names.
const (
	schemaBreedList   = "breed_list"
	schemaBreedSearch = "breed_search"
	schemaBreedDetail = "breed_detail"
)

// Validator checks generated JSON against the embedded schema documents.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		file, err := schemaFS.Open(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, err
		}
		err = compiler.AddResource(entry.Name(), file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", entry.Name(), err)
		}
		names = append(names, entry.Name())
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		v.schemas[strings.TrimSuffix(name, ".json")] = schema
	}
	return v, nil
}

// Validate parses body and checks it against the named schema.
func (v *Validator) Validate(name string, body []byte) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("schema %q not registered", name)
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("generated output is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("generated output failed schema validation: %w", err)
	}
	return nil
}

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

// Response schemas sent with each request so the model emits the matching shape.
var (
	listResponseSchema = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":             stringSchema(),
				"shortDescription": stringSchema(),
				"size":             stringSchema(),
			},
			Required: []string{"name", "shortDescription", "size"},
		},
	}

	searchResponseSchema = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":             stringSchema(),
				"type":             {Type: genai.TypeString, Enum: []string{"dog", "cat"}},
				"shortDescription": stringSchema(),
				"size":             stringSchema(),
			},
			Required: []string{"name", "type", "shortDescription", "size"},
		},
	}

	detailResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":             stringSchema(),
			"scientificName":   stringSchema(),
			"shortDescription": stringSchema(),
			"size":             stringSchema(),
			"height":           stringSchema(),
			"weight":           stringSchema(),
			"lifespan":         stringSchema(),
			"origin":           stringSchema(),
			"history":          stringSchema(),
			"story":            stringSchema(),
			"characteristics":  {Type: genai.TypeArray, Items: stringSchema()},
		},
		Required: []string{"name", "scientificName", "height", "weight", "lifespan", "origin", "history", "story", "characteristics"},
	}
)
