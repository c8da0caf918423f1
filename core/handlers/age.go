package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
)

const AgeHandlerName = "age"

// dobLayout is the only birthday format the handler understands,
// e.g. "January 1, 1990".
const dobLayout = "January 2, 2006"

// AgeHandler computes the user's age from the top-level "dob" key.
// Note it deliberately does not read user_info.birthday: the two keys
// never connect in this design, and the handler stays silent unless
// "dob" was set some other way.
type AgeHandler struct {
	Now func() time.Time
}

func NewAge() *AgeHandler {
	return &AgeHandler{Now: time.Now}
}

func (h *AgeHandler) Name() string {
	return AgeHandlerName
}

func (h *AgeHandler) Handle(query string, mem *memory.Store) *types.CommandResult {
	if !strings.Contains(strings.ToLower(query), "age") {
		return nil
	}
	dob, ok := mem.Get(memory.KeyDOB)
	if !ok {
		return nil
	}

	born, err := time.Parse(dobLayout, dob)
	if err != nil {
		xlog.Debug("Stored dob does not parse", "dob", dob, "error", err)
		return types.Reply("I remember your birthday, but I can't calculate your age with the format I have. Please tell me your birthday again in a full format like 'January 1, 1990'.")
	}

	now := h.Now()
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return types.Reply(fmt.Sprintf("You are %d years old.", age))
}
