package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"snackbot/internal/handler/api"
	"snackbot/internal/handler/middleware"
	"snackbot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	commandHandler *api.CommandHandler,
	interactionHandler *api.InteractionHandler,
	oauthHandler *api.OAuthHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, commandHandler, interactionHandler, oauthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	commandHandler *api.CommandHandler,
	interactionHandler *api.InteractionHandler,
	oauthHandler *api.OAuthHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	verified := middleware.VerifySlackSignature(cfg.Slack)

	slackGroup := engine.Group("")
	slackGroup.Use(verified)
	{
		commandsGroup := slackGroup.Group("/commands")
		{
			addRoutes(commandsGroup, []route{
				{Method: http.MethodPost, Path: "/search", Handler: commandHandler.Search},
				{Method: http.MethodPost, Path: "/nominate", Handler: commandHandler.Nominate},
			})
		}

		addRoutes(slackGroup, []route{
			{Method: http.MethodPost, Path: "/interactions", Handler: interactionHandler.Handle},
		})
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/oauth/callback", Handler: oauthHandler.Callback},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
