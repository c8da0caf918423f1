package webui

import (
	"math"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mudler/xlog"
	"github.com/pradyumna-dev/jarvis/core/types"
)

const sessionCookie = "session_id"

func (a *App) registerRoutes(webapp *fiber.App) {
	webapp.Get("/", func(c *fiber.Ctx) error {
		return c.Render("views/chat", fiber.Map{
			"History": a.config.Conversations.History(a.sessionID(c)),
		})
	})

	webapp.Post("/chat", a.Chat())
}

// sessionID returns the caller's session identifier, minting a cookie
// on first contact.
func (a *App) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
	})
	return id
}

// Chat is the single conversational endpoint: run the local handler
// chain against the utterance, fall back to the remote model when no
// handler matches, and return the reply with the updated transcript.
func (a *App) Chat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		payload := struct {
			UserInput string `form:"user_input" json:"user_input"`
		}{}
		if err := c.BodyParser(&payload); err != nil {
			return err
		}
		query := payload.UserInput
		if query == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Please enter a message.",
			})
		}

		sessionID := a.sessionID(c)
		mem := a.config.Pool.Get(sessionID)
		conv := a.config.Conversations

		start := time.Now()

		// Snapshot before appending so the fallback does not see the
		// current query twice.
		history := conv.History(sessionID)
		conv.AddMessage(sessionID, types.UserMessage(query))

		var response string
		if result := a.config.Dispatcher.Dispatch(query, mem); result != nil {
			response = result.Response
			if result.MemoryChanged {
				xlog.Debug("Session memory updated", "session", sessionID)
			}
		} else {
			response = a.config.Fallback(c.UserContext(), query, history)
		}

		conv.AddMessage(sessionID, types.AssistantMessage(response))

		elapsed := math.Round(time.Since(start).Seconds()*100) / 100

		return c.JSON(fiber.Map{
			"response":      response,
			"chat_history":  conv.History(sessionID),
			"response_time": elapsed,
		})
	}
}
