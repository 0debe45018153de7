package middleware

import "github.com/aretw0/intake/pkg/ports"

// Middleware allows wrapping an AnswerStore to add behavior.
type Middleware func(ports.AnswerStore) ports.AnswerStore

// Chain wraps store with every middleware. The first middleware is the outermost,
// so it sees the answers exactly as the engine handed them over.
func Chain(store ports.AnswerStore, mws ...Middleware) ports.AnswerStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
