package llm

import (
	"context"
	"fmt"

	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/types"
	"github.com/sashabaranov/go-openai"
)

// Chat is the remote-model fallback: when no local handler answers an
// utterance, the full conversation plus the new query is sent to the
// model and its reply is returned as the assistant's response.
type Chat struct {
	client *openai.Client
	model  string
}

func NewChat(client *openai.Client, model string) *Chat {
	return &Chat{client: client, model: model}
}

// Ask never returns an error: transport failures become a user-facing
// response string, matching how handler failures are surfaced.
func (c *Chat) Ask(ctx context.Context, query string, history []openai.ChatCompletionMessage) string {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, types.UserMessage(query))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		xlog.Error("Remote model call failed", "error", err)
		return fmt.Sprintf("Error communicating with AI: %v", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		xlog.Warn("Remote model returned no content")
		return "No response from the model."
	}

	return FormatCodeBlocks(resp.Choices[0].Message.Content)
}
