package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
)

const MemoryHandlerName = "memory"

var (
	// "remember that my X is Y", with both prefixes optional.
	assertionRx = regexp.MustCompile(`(?:remember that\s+)?(?:my\s+)?(.+?)\s+is\s+(.+)`)
	// The trailing "s?" strips at most one plural "s" from the captured
	// item; the stored key and the reply always re-append one.
	quantityRx = regexp.MustCompile(`i have (\d+)\s+(.+?)s?$`)
	originRx   = regexp.MustCompile(`i am from\s+(.+)`)
	roleRx     = regexp.MustCompile(`i am an?\s+(.+)`)
)

// MemoryHandler parses free-text assertions and writes the derived
// facts into the session memory.
type MemoryHandler struct{}

func NewMemory() *MemoryHandler {
	return &MemoryHandler{}
}

func (h *MemoryHandler) Name() string {
	return MemoryHandlerName
}

func (h *MemoryHandler) Handle(query string, mem *memory.Store) *types.CommandResult {
	q := strings.ToLower(query)

	if m := assertionRx.FindStringSubmatch(q); m != nil {
		key := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])

		// "what is my name" parses as key "what": a question, not an
		// assertion. Decline so the remote model can answer it.
		if memory.IsInterrogative(key) {
			xlog.Debug("Assertion key is a question word, declining", "key", key)
			return nil
		}

		switch key {
		case memory.UserName, memory.UserGender, memory.UserBirthday:
			mem.SetUserInfo(key, value)
		default:
			mem.Set(key, value)
		}
		xlog.Debug("Stored assertion", "key", key, "value", value)
		return types.Stored(fmt.Sprintf("Okay, I will remember that your %s is %s.", key, value))
	}

	if m := quantityRx.FindStringSubmatch(q); m != nil {
		number := m[1]
		item := strings.TrimSpace(m[2])
		mem.Set(fmt.Sprintf("number of %ss", item), number)
		return types.Stored(fmt.Sprintf("Okay, I will remember that you have %s %ss.", number, item))
	}

	if m := originRx.FindStringSubmatch(q); m != nil {
		location := strings.TrimSpace(m[1])
		mem.SetUserInfo(memory.UserLocation, location)
		return types.Stored(fmt.Sprintf("Okay, I will remember that you are from %s.", location))
	}

	if m := roleRx.FindStringSubmatch(q); m != nil {
		role := strings.TrimSpace(m[1])
		mem.Set(memory.KeyRole, role)
		return types.Stored(fmt.Sprintf("Okay, I will remember that you are a %s.", role))
	}

	// Free-form "remember that ..." facts without an "is" clause get
	// numbered fact_N keys.
	if strings.Contains(q, "remember that") {
		parts := strings.Split(q, "remember that")
		fact := strings.TrimSpace(parts[len(parts)-1])
		if fact != "" && !strings.Contains(fact, " is ") {
			key := mem.StoreFact(fact)
			xlog.Debug("Stored free-form fact", "key", key)
			return types.Stored(fmt.Sprintf("Okay, I will remember that: %s.", fact))
		}
	}

	return nil
}
