package ports

import (
	"context"

	"github.com/aretw0/intake/pkg/domain"
)

// ScriptLoader defines how the host retrieves the script of a conversation.
// This allows the script source (YAML file, Loam directory, Go code) to be decoupled.
type ScriptLoader interface {
	LoadScript(ctx context.Context) (domain.Script, error)
}
