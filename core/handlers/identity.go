package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
)

const IdentityHandlerName = "identity"

var whoIsRx = regexp.MustCompile(`who is (.+)`)

// IdentityHandler answers questions about the assistant's or the user's
// identity from memory. It never mutates memory.
type IdentityHandler struct{}

func NewIdentity() *IdentityHandler {
	return &IdentityHandler{}
}

func (h *IdentityHandler) Name() string {
	return IdentityHandlerName
}

func (h *IdentityHandler) Handle(query string, mem *memory.Store) *types.CommandResult {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "who are you"),
		strings.Contains(q, "what is your name"),
		strings.Contains(q, "who is your owner"):
		aiName, hasName := mem.Get(memory.KeyAIName)
		owner, hasOwner := mem.Get(memory.KeyOwnerCreator)
		if hasName && hasOwner {
			return types.Reply(fmt.Sprintf("I am %s, created by %s.", aiName, owner))
		}
		if hasName {
			return types.Reply(fmt.Sprintf("I am %s.", aiName))
		}
		// No identity seeded, let the remote model answer.
		return nil

	case strings.Contains(q, "did you know me"), strings.Contains(q, "do you know me"):
		if name, ok := mem.UserInfo(memory.UserName); ok {
			return types.Reply(fmt.Sprintf("Yes, I know your name is %s.", name))
		}
		return types.Reply("I don't have your name stored in my memory.")
	}

	if m := whoIsRx.FindStringSubmatch(q); m != nil {
		queried := strings.TrimSpace(m[1])
		if name, ok := mem.UserInfo(memory.UserName); ok && queried == strings.ToLower(name) {
			return types.Reply(fmt.Sprintf("That's you, %s.", name))
		}
	}

	return nil
}
