package config

import (
	"encoding/json"
	"os"

	"github.com/mudler/xlog"
)

// Commands holds the phrase-to-action configuration the action handler
// matches against, normally loaded from a commands.json file.
type Commands struct {
	OpenAppPhrase string            `json:"open_app_phrase"`
	SearchPhrase  string            `json:"search_phrase"`
	SearchURL     string            `json:"search_url"`
	WebPhrases    map[string]string `json:"web_phrases"`
}

// Empty reports whether nothing is configured, in which case none of
// the phrase-based actions ever fire.
func (c *Commands) Empty() bool {
	return c.OpenAppPhrase == "" && c.SearchPhrase == "" && c.SearchURL == "" && len(c.WebPhrases) == 0
}

// LoadCommands reads the phrase configuration from path. A missing or
// malformed file degrades to an empty configuration rather than an
// error: the assistant keeps working, the actions just never match.
func LoadCommands(path string) *Commands {
	commands := &Commands{}

	data, err := os.ReadFile(path)
	if err != nil {
		xlog.Warn("Commands file not readable, actions disabled", "path", path, "error", err)
		return commands
	}
	if err := json.Unmarshal(data, commands); err != nil {
		xlog.Warn("Commands file is not valid JSON, actions disabled", "path", path, "error", err)
		return &Commands{}
	}
	return commands
}
