package state

import (
	"sync"

	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/memory"
)

// SessionPool owns one memory store per session, each seeded with the
// assistant's identity constants. It replaces process-global memory:
// facts learned in one session never leak into another.
type SessionPool struct {
	mu       sync.Mutex
	sessions map[string]*memory.Store

	aiName       string
	ownerCreator string
}

func NewSessionPool(aiName, ownerCreator string) *SessionPool {
	return &SessionPool{
		sessions:     map[string]*memory.Store{},
		aiName:       aiName,
		ownerCreator: ownerCreator,
	}
}

// Get returns the memory store for a session, creating and seeding it
// on first use.
func (p *SessionPool) Get(sessionID string) *memory.Store {
	p.mu.Lock()
	defer p.mu.Unlock()

	if store, ok := p.sessions[sessionID]; ok {
		return store
	}
	store := memory.NewStore(p.aiName, p.ownerCreator)
	p.sessions[sessionID] = store
	xlog.Debug("Created session memory", "session", sessionID)
	return store
}

// Len reports the number of live sessions.
func (p *SessionPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sessions)
}
