package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
)

const DateTimeHandlerName = "datetime"

// DateTimeHandler answers date and time queries from the wall clock.
// "date" wins over "time" when an utterance contains both.
type DateTimeHandler struct {
	// Now is the clock; swapped out in tests.
	Now func() time.Time
}

func NewDateTime() *DateTimeHandler {
	return &DateTimeHandler{Now: time.Now}
}

func (h *DateTimeHandler) Name() string {
	return DateTimeHandlerName
}

func (h *DateTimeHandler) Handle(query string, mem *memory.Store) *types.CommandResult {
	q := strings.ToLower(query)
	now := h.Now()

	if strings.Contains(q, "date") {
		return types.Reply(fmt.Sprintf("Today's date is %s.", now.Format("Monday, January 02, 2006")))
	}
	if strings.Contains(q, "time") {
		return types.Reply(fmt.Sprintf("The current time is %s.", now.Format("03:04 PM")))
	}
	return nil
}
