package bootstrap

import (
	"snackbot/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.WorkflowConfig { return cfg.Workflow },
		func(cfg config.Config) config.SlackConfig { return cfg.Slack },
		func(cfg config.Config) config.BoxedConfig { return cfg.Boxed },
	),
)
