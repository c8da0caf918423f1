package handlers

import (
	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
	"github.com/pradyumna-dev/jarvis/pkg/config"
)

// Dispatcher tries each handler against an utterance in a fixed
// priority order and returns the first answer. A nil return means no
// local handler applied and the caller should fall back to the remote
// model.
type Dispatcher struct {
	handlers types.Handlers
}

func NewDispatcher(handlers ...types.Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// NewDefaultDispatcher builds the standard chain: memory assertions
// first, then identity, age, date/time, and phrase-matched actions.
func NewDefaultDispatcher(commands *config.Commands, apps AppLauncher, browser Browser) *Dispatcher {
	return NewDispatcher(
		NewMemory(),
		NewIdentity(),
		NewAge(),
		NewDateTime(),
		NewAction(commands, apps, browser),
	)
}

func (d *Dispatcher) Dispatch(query string, mem *memory.Store) *types.CommandResult {
	for _, handler := range d.handlers {
		if result := handler.Handle(query, mem); result != nil {
			xlog.Debug("Handler matched", "handler", handler.Name(), "memoryChanged", result.MemoryChanged)
			return result
		}
	}
	xlog.Debug("No handler matched, deferring to remote model")
	return nil
}
