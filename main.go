package main

import (
	"log"
	"os"
	"time"

	"github.com/pradyumna-dev/jarvis/core/conversations"
	"github.com/pradyumna-dev/jarvis/core/handlers"
	"github.com/pradyumna-dev/jarvis/core/state"
	"github.com/pradyumna-dev/jarvis/pkg/config"
	"github.com/pradyumna-dev/jarvis/pkg/launcher"
	"github.com/pradyumna-dev/jarvis/pkg/llm"
	"github.com/pradyumna-dev/jarvis/webui"
)

var baseModel = os.Getenv("JARVIS_MODEL")
var apiURL = os.Getenv("JARVIS_LLM_API_URL")
var apiKey = os.Getenv("JARVIS_LLM_API_KEY")
var timeout = os.Getenv("JARVIS_TIMEOUT")
var aiName = os.Getenv("JARVIS_AI_NAME")
var ownerCreator = os.Getenv("JARVIS_OWNER")
var commandsFile = os.Getenv("JARVIS_COMMANDS_FILE")
var conversationDuration = os.Getenv("JARVIS_CONVERSATION_DURATION")

func init() {
	if baseModel == "" {
		panic("JARVIS_MODEL not set")
	}
	if apiURL == "" {
		panic("JARVIS_LLM_API_URL not set")
	}
	if timeout == "" {
		timeout = "5m"
	}
	if aiName == "" {
		aiName = "Jarvis"
	}
	if ownerCreator == "" {
		ownerCreator = "Pradyumna"
	}
	if commandsFile == "" {
		commandsFile = "commands.json"
	}
}

func main() {
	idle := 24 * time.Hour
	if conversationDuration != "" {
		parsed, err := time.ParseDuration(conversationDuration)
		if err != nil {
			panic(err)
		}
		idle = parsed
	}

	open := launcher.New()

	dispatcher := handlers.NewDefaultDispatcher(
		config.LoadCommands(commandsFile),
		open,
		open,
	)

	chat := llm.NewChat(llm.NewClient(apiKey, apiURL, timeout), baseModel)

	app := webui.NewApp(
		webui.WithPool(state.NewSessionPool(aiName, ownerCreator)),
		webui.WithConversations(conversations.NewTracker(idle)),
		webui.WithDispatcher(dispatcher),
		webui.WithFallback(chat.Ask),
	)

	log.Fatal(app.Listen(":3000"))
}
