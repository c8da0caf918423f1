package types

import (
	"github.com/pradyumna-dev/jarvis/core/memory"
)

// Handler is something that can try to answer an utterance locally.
// Handlers are pure decision functions: they inspect the query, may read
// or write the session memory, and either produce a final answer or
// decline by returning nil.
type Handler interface {
	Name() string
	Handle(query string, mem *memory.Store) *CommandResult
}

type Handlers []Handler

func (h Handlers) Find(name string) Handler {
	for _, handler := range h {
		if handler.Name() == name {
			return handler
		}
	}
	return nil
}
