package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/memory"
	"github.com/pradyumna-dev/jarvis/core/types"
	"github.com/pradyumna-dev/jarvis/pkg/config"
	"github.com/pradyumna-dev/jarvis/pkg/launcher"
	"mvdan.cc/xurls/v2"
)

const ActionHandlerName = "action"

var (
	greetings       = []string{"hello", "hi", "hey"}
	greetingReplies = []string{"Hello!", "Hi there!", "Hey! How can I help?"}

	urlRx = xurls.Strict()
)

// AppLauncher starts a named application on the local machine.
type AppLauncher interface {
	OpenApp(name string) error
}

// Browser opens a URL in the default browser, fire and forget.
type Browser interface {
	OpenURL(url string)
}

// ActionHandler matches configured phrases (open app, web search, open
// website) and greetings. It never touches memory; its only state is the
// externally supplied phrase configuration and the two collaborators.
type ActionHandler struct {
	commands *config.Commands
	apps     AppLauncher
	browser  Browser

	// pick selects the greeting reply; swapped out in tests.
	pick func(n int) int
}

func NewAction(commands *config.Commands, apps AppLauncher, browser Browser) *ActionHandler {
	if commands == nil {
		commands = &config.Commands{}
	}
	return &ActionHandler{
		commands: commands,
		apps:     apps,
		browser:  browser,
		pick:     rand.Intn,
	}
}

func (h *ActionHandler) Name() string {
	return ActionHandlerName
}

// SetRand overrides the greeting selector. Tests use it to make the
// pseudo-random choice deterministic.
func (h *ActionHandler) SetRand(pick func(n int) int) {
	h.pick = pick
}

func (h *ActionHandler) Handle(query string, mem *memory.Store) *types.CommandResult {
	q := strings.ToLower(query)

	if p := h.commands.OpenAppPhrase; p != "" && strings.HasPrefix(q, p) {
		return h.openApp(strings.TrimSpace(strings.ReplaceAll(q, p, "")))
	}

	if p := h.commands.SearchPhrase; p != "" && strings.HasPrefix(q, p) {
		term := strings.TrimSpace(strings.ReplaceAll(q, p, ""))
		url := strings.ReplaceAll(h.commands.SearchURL, "{query}", term)
		h.browser.OpenURL(url)
		return types.Reply(fmt.Sprintf("Searching for %s.", term))
	}

	for _, greeting := range greetings {
		if q == greeting || strings.HasPrefix(q, greeting) {
			return types.Reply(greetingReplies[h.pick(len(greetingReplies))])
		}
	}

	if strings.Contains(q, "open") && len(h.commands.WebPhrases) > 0 {
		rest := strings.TrimSpace(strings.ReplaceAll(q, "open", ""))
		site := strings.SplitN(rest, " ", 2)[0]
		if url, ok := h.commands.WebPhrases[site]; ok {
			h.browser.OpenURL(url)
			return types.Reply(fmt.Sprintf("Opening %s.", site))
		}
		// Not a configured site, but a full URL in the utterance is
		// unambiguous enough to open directly.
		if url := urlRx.FindString(query); url != "" {
			h.browser.OpenURL(url)
			return types.Reply(fmt.Sprintf("Opening %s.", url))
		}
	}

	return nil
}

func (h *ActionHandler) openApp(name string) *types.CommandResult {
	err := h.apps.OpenApp(name)
	var unsupported *launcher.UnsupportedPlatformError
	switch {
	case errors.As(err, &unsupported):
		return types.Reply(fmt.Sprintf("Sorry, I don't know how to open applications on your operating system (%s).", unsupported.Platform))
	case err != nil:
		xlog.Warn("Application launch failed", "app", name, "error", err)
		return types.Reply(fmt.Sprintf("An error occurred while trying to open %s: %v.", name, err))
	}
	return types.Reply(fmt.Sprintf("Opening %s.", name))
}
