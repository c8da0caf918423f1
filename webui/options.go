package webui

import (
	"context"
	"time"

	"github.com/pradyumna-dev/jarvis/core/conversations"
	"github.com/pradyumna-dev/jarvis/core/handlers"
	"github.com/pradyumna-dev/jarvis/core/state"
	"github.com/sashabaranov/go-openai"
)

// Fallback answers an utterance with the remote model when no local
// handler matched. It receives the history up to, but not including,
// the current query.
type Fallback func(ctx context.Context, query string, history []openai.ChatCompletionMessage) string

type Config struct {
	Pool          *state.SessionPool
	Dispatcher    *handlers.Dispatcher
	Conversations *conversations.Tracker
	Fallback      Fallback
}

type Option func(*Config)

func WithPool(pool *state.SessionPool) Option {
	return func(c *Config) {
		c.Pool = pool
	}
}

func WithDispatcher(d *handlers.Dispatcher) Option {
	return func(c *Config) {
		c.Dispatcher = d
	}
}

func WithConversations(t *conversations.Tracker) Option {
	return func(c *Config) {
		c.Conversations = t
	}
}

func WithFallback(f Fallback) Option {
	return func(c *Config) {
		c.Fallback = f
	}
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

func NewConfig(opts ...Option) *Config {
	c := &Config{
		Conversations: conversations.NewTracker(24 * time.Hour),
	}
	c.Apply(opts...)
	return c
}
