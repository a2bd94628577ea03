package slackmsg

import (
	"context"
	"net/http"

	"snackbot/internal/infra/repository"
	"snackbot/internal/pkg/config"
	"snackbot/internal/pkg/errs"

	"github.com/slack-go/slack"
)

// OAuthExchanger turns an OAuth callback code into a workspace record.
type OAuthExchanger interface {
	Exchange(ctx context.Context, code string) (repository.AuthedTeam, error)
}

type oauthExchanger struct {
	cfg  config.SlackConfig
	http *http.Client
}

func NewOAuthExchanger(cfg config.SlackConfig) OAuthExchanger {
	return &oauthExchanger{cfg: cfg, http: &http.Client{}}
}

func (e *oauthExchanger) Exchange(ctx context.Context, code string) (repository.AuthedTeam, error) {
	resp, err := slack.GetOAuthResponseContext(ctx, e.http, e.cfg.ClientID, e.cfg.ClientSecret, code, "")
	if err != nil {
		return repository.AuthedTeam{}, errs.Wrap(err, "oauth code exchange failed")
	}

	return repository.AuthedTeam{
		TeamID:      resp.TeamID,
		TeamName:    resp.TeamName,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
	}, nil
}
