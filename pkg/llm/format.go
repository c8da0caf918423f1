package llm

import (
	"fmt"
	"html"
	"regexp"
)

// Matches fenced code blocks ```lang\ncode``` with an optional language
// tag. (?s) lets the body span lines.
var fenceRx = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")

// FormatCodeBlocks rewrites fenced code blocks in a model response into
// escaped <pre><code> markup the chat page can highlight. Text outside
// the fences is left untouched. The language defaults to python when
// the fence has no tag.
func FormatCodeBlocks(s string) string {
	return fenceRx.ReplaceAllStringFunc(s, func(block string) string {
		m := fenceRx.FindStringSubmatch(block)
		lang := m[1]
		if lang == "" {
			lang = "python"
		}
		return fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>", lang, html.EscapeString(m[2]))
	})
}
