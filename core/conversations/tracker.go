package conversations

import (
	"sync"
	"time"

	"github.com/mudler/xlog"
	"github.com/sashabaranov/go-openai"
)

// Tracker keeps the per-session conversation history. Histories are
// append-only for the life of a session; sessions idle for longer than
// the configured duration are swept away on the next access.
type Tracker struct {
	mu       sync.Mutex
	history  map[string][]openai.ChatCompletionMessage
	lastSeen map[string]time.Time
	idle     time.Duration
}

func NewTracker(idle time.Duration) *Tracker {
	return &Tracker{
		history:  map[string][]openai.ChatCompletionMessage{},
		lastSeen: map[string]time.Time{},
		idle:     idle,
	}
}

// History returns a copy of the conversation for the given session,
// sweeping expired sessions as a side effect.
func (t *Tracker) History(sessionID string) []openai.ChatCompletionMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweep()

	conv := t.history[sessionID]
	out := make([]openai.ChatCompletionMessage, len(conv))
	copy(out, conv)
	return out
}

// AddMessage appends a turn to the session's history.
func (t *Tracker) AddMessage(sessionID string, message openai.ChatCompletionMessage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.history[sessionID] = append(t.history[sessionID], message)
	t.lastSeen[sessionID] = time.Now()
}

// sweep drops histories whose session has been idle past the limit.
// Callers hold the mutex.
func (t *Tracker) sweep() {
	if t.idle <= 0 {
		return
	}
	now := time.Now()
	for id, seen := range t.lastSeen {
		if seen.Add(t.idle).Before(now) {
			xlog.Debug("Expiring idle conversation", "session", id)
			delete(t.history, id)
			delete(t.lastSeen, id)
		}
	}
}
