package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	reflectschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "boxworld.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// SchemaJSON reflects the JSON schema of Document
func SchemaJSON() ([]byte, error) {
	reflector := reflectschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := reflector.Reflect(&Document{})
	s.Title = "Box World Document"
	s.Description = "Persisted player position, signs, vortexes and display toggles."
	return json.MarshalIndent(s, "", "  ")
}

// Schema returns the compiled document schema, built once
func Schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := SchemaJSON()
		if err != nil {
			schemaErr = fmt.Errorf("reflect schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// DecodeDocument parses and validates data
// Syntax errors and schema violations are reported as ErrMalformed
func DecodeDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}
