package components

import (
	"snackbot/internal/handler/api"
	"snackbot/internal/infra/actionstate"
	"snackbot/internal/infra/boxed"
	repo_impl "snackbot/internal/infra/repository"
	"snackbot/internal/infra/slackmsg"
	"snackbot/internal/usecase/commands"
	"snackbot/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewSnackRequestRepository,
			fx.As(new(commands.SnackRequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuthedTeamRepository,
			fx.As(new(api.AuthedTeamStore)),
		),
		// Boxed serves three roles: write-side catalog lookups, read-side
		// search, and storefront URL rendering in Slack messages.
		fx.Annotate(
			boxed.NewClient,
			fx.As(new(commands.ProductCatalog)),
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(slackmsg.ProductURLBuilder)),
		),
		fx.Annotate(
			actionstate.NewStore,
			fx.As(new(commands.ActionStateStore)),
		),
		fx.Annotate(
			slackmsg.NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		slackmsg.NewOAuthExchanger,
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
