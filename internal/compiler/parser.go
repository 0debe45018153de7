package compiler

import (
	"bytes"
	"fmt"

	"github.com/aretw0/intake/internal/dto"
	"github.com/aretw0/intake/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is a parsed script file.
type Document struct {
	Name   string
	Key    string
	Script domain.Script
}

// Parser is responsible for converting raw bytes into a Script.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML or JSON script. Both a bare list of steps and a
// document with a "steps" key are accepted. Unknown keys are rejected.
// The returned script is not validated.
func (p *Parser) Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("failed to parse script: empty document")
	}

	// JSON is a subset of YAML, so a single decoder covers both formats.
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	var doc dto.ScriptDocument
	switch v := raw.(type) {
	case []any:
		if err := decode(v, &doc.Steps); err != nil {
			return nil, err
		}
	case map[string]any:
		if err := decode(v, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to parse script: expected a list of steps or a document, got %T", raw)
	}

	s := make(domain.Script, 0, len(doc.Steps))
	for _, meta := range doc.Steps {
		s = append(s, meta.Step(""))
	}

	return &Document{Name: doc.Name, Key: doc.Key, Script: s}, nil
}

func decode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to decode script: %w", err)
	}
	return nil
}

// Marshal renders a script as a YAML document Parse can read back.
func Marshal(name, key string, s domain.Script) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(dto.FromScript(name, key, s)); err != nil {
		return nil, fmt.Errorf("failed to encode script: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode script: %w", err)
	}
	return buf.Bytes(), nil
}
