package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"snackbot/internal/domain/snack"
	"snackbot/internal/handler/httperr"
	"snackbot/internal/infra/slackmsg"
	"snackbot/internal/pkg/config"
	"snackbot/internal/usecase/commands"
	"snackbot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	slackapi "github.com/slack-go/slack"
)

// CommandHandler serves the slash-command endpoints. Slack enforces a short
// synchronous response budget, so nomination work is acknowledged
// immediately and finished on a background task that reports through the
// response URL.
type CommandHandler struct {
	workflow commands.SnackWorkflow
	search   queries.SearchQueries
	runner   taskRunner
}

func NewCommandHandler(workflow commands.SnackWorkflow, search queries.SearchQueries, cfg config.Config, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{
		workflow: workflow,
		search:   search,
		runner:   taskRunner{timeout: cfg.Workflow.TaskTimeout, logger: logger},
	}
}

// Search handles `/snacksearch`: catalog lookup rendered as up to ten
// candidates, each with a "Request this" button.
func (h *CommandHandler) Search(c *gin.Context) {
	cmd, err := slackapi.SlashCommandParse(c.Request)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slash command", nil)
		return
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		c.JSON(http.StatusOK, slackapi.Msg{
			ResponseType: slackapi.ResponseTypeEphemeral,
			Text:         "Tell me what to search for, e.g. `/snacksearch popcorn`",
		})
		return
	}

	products, err := h.search.SearchProducts(c.Request.Context(), text)
	if err != nil {
		h.runner.logger.Error("catalog search failed", "error", err, "query", text)
		c.JSON(http.StatusOK, slackapi.Msg{
			ResponseType: slackapi.ResponseTypeEphemeral,
			Text:         "😔 The snack catalog isn't answering right now. Try again in a bit.",
		})
		return
	}

	c.JSON(http.StatusOK, slackmsg.SearchResultsMessage(products, cmd.UserID, cmd.UserName))
}

// Nominate handles `/snackrequest`: immediate acknowledgment, then the
// dedup workflow runs asynchronously.
func (h *CommandHandler) Nominate(c *gin.Context) {
	cmd, err := slackapi.SlashCommandParse(c.Request)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slash command", nil)
		return
	}

	ref := strings.TrimSpace(cmd.Text)
	if ref == "" {
		c.JSON(http.StatusOK, slackapi.Msg{
			ResponseType: slackapi.ResponseTypeEphemeral,
			Text:         "Give me a Boxed product link or id to request.",
		})
		return
	}

	requester := snack.Requester{ID: cmd.UserID, Name: cmd.UserName}
	responseURL := cmd.ResponseURL
	h.runner.run(func(ctx context.Context) {
		_ = h.workflow.Nominate(ctx, ref, requester, responseURL)
	})

	c.JSON(http.StatusOK, slackapi.Msg{
		ResponseType: slackapi.ResponseTypeEphemeral,
		Text:         "🔎 On it! I'll get back to you here in a moment.",
	})
}
