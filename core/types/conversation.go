package types

import (
	"github.com/sashabaranov/go-openai"
)

// Conversation roles, matching the OpenAI chat message roles used for
// the remote-model fallback.
const (
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// UserMessage builds a user conversation turn.
func UserMessage(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    RoleUser,
		Content: content,
	}
}

// AssistantMessage builds an assistant conversation turn.
func AssistantMessage(content string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    RoleAssistant,
		Content: content,
	}
}
