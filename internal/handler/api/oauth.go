package api

import (
	"context"
	"log/slog"
	"net/http"

	"snackbot/internal/handler/httperr"
	"snackbot/internal/infra/repository"
	"snackbot/internal/infra/slackmsg"

	"github.com/gin-gonic/gin"
)

// AuthedTeamStore persists per-workspace OAuth records.
type AuthedTeamStore interface {
	Upsert(ctx context.Context, team repository.AuthedTeam) error
}

type OAuthHandler struct {
	exchanger slackmsg.OAuthExchanger
	teams     AuthedTeamStore
	logger    *slog.Logger
}

func NewOAuthHandler(exchanger slackmsg.OAuthExchanger, teams AuthedTeamStore, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{exchanger: exchanger, teams: teams, logger: logger}
}

// Callback completes the workspace install: exchange the code, upsert the
// team record, greet the installer.
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingCode, "Missing oauth code", nil)
		return
	}

	team, err := h.exchanger.Exchange(c.Request.Context(), code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "OAuth exchange failed", nil)
		return
	}

	if err := h.teams.Upsert(c.Request.Context(), team); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store team", nil)
		return
	}

	h.logger.Info("workspace installed", "team_id", team.TeamID, "team_name", team.TeamName)
	c.String(http.StatusOK, "Authentication Successful!")
}
