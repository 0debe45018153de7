package script

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/intake/internal/compiler"
	"github.com/aretw0/intake/pkg/domain"
)

// Parse decodes and validates a YAML or JSON script.
func Parse(data []byte) (domain.Script, error) {
	doc, err := compiler.NewParser().Parse(data)
	if err != nil {
		return nil, err
	}
	if err := doc.Script.Validate(); err != nil {
		return nil, err
	}
	return doc.Script, nil
}

// Marshal renders a script as YAML.
func Marshal(s domain.Script) ([]byte, error) {
	return compiler.Marshal("", "", s)
}

// FileLoader implements ports.ScriptLoader for a script file on disk.
// The file is read on every call, so edits are picked up by the next conversation.
type FileLoader struct {
	Path string

	parser *compiler.Parser
	doc    *compiler.Document
}

// NewFileLoader creates a loader for the script at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path, parser: compiler.NewParser()}
}

// LoadScript reads, parses and validates the script file.
func (l *FileLoader) LoadScript(ctx context.Context) (domain.Script, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", l.Path, err)
	}

	doc, err := l.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	if err := doc.Script.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}

	l.doc = doc
	return doc.Script, nil
}

// Name returns the name declared by the last loaded file, if any.
func (l *FileLoader) Name() string {
	if l.doc == nil {
		return ""
	}
	return l.doc.Name
}

// Key returns the sink key declared by the last loaded file, if any.
func (l *FileLoader) Key() string {
	if l.doc == nil {
		return ""
	}
	return l.doc.Key
}
