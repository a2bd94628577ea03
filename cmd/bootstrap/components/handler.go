package components

import (
	"snackbot/internal/handler"
	"snackbot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCommandHandler,
		api.NewInteractionHandler,
		api.NewOAuthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
