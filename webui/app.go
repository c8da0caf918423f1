package webui

import (
	"embed"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsfs embed.FS

type App struct {
	config *Config
	*fiber.App
}

func NewApp(opts ...Option) *App {
	config := NewConfig(opts...)

	engine := html.NewFileSystem(http.FS(viewsfs), ".html")
	engine.AddFuncMap(sprig.FuncMap())

	webapp := fiber.New(fiber.Config{
		Views: engine,
		// Handlers store substrings of the request body in long-lived
		// session memory; without Immutable those strings alias
		// fasthttp's recycled buffers and get corrupted by later
		// requests.
		Immutable: true,
	})

	a := &App{
		config: config,
		App:    webapp,
	}

	a.registerRoutes(webapp)

	return a
}
