package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"snackbot/internal/domain/snack"
	"snackbot/internal/infra/slackmsg"
	"snackbot/internal/pkg/config"
	"snackbot/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	slackapi "github.com/slack-go/slack"
)

// InteractionHandler serves button clicks. The exchange is always
// acknowledged with a bare 200 before any workflow I/O; malformed or
// unknown payloads are logged and ignored, never failed.
type InteractionHandler struct {
	workflow commands.SnackWorkflow
	runner   taskRunner
}

func NewInteractionHandler(workflow commands.SnackWorkflow, cfg config.Config, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{
		workflow: workflow,
		runner:   taskRunner{timeout: cfg.Workflow.TaskTimeout, logger: logger},
	}
}

// interaction is the decoded, tagged form of an inbound payload.
type interaction struct {
	kind        string // one of the Callback* ids
	action      commands.ChosenAction
	token       string
	inline      *slackmsg.InlineNomination
	requester   snack.Requester
	responseURL string
}

func (h *InteractionHandler) Handle(c *gin.Context) {
	payload := c.PostForm("payload")
	if payload == "" {
		h.runner.logger.Warn("interaction without payload")
		c.Status(http.StatusOK)
		return
	}

	var callback slackapi.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		h.runner.logger.Warn("undecodable interaction payload", "error", err)
		c.Status(http.StatusOK)
		return
	}

	in, ok := h.decode(callback)
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	h.dispatch(in)
	c.Status(http.StatusOK)
}

// decode flattens the platform payload into a tagged variant. Unrecognized
// shapes are dropped here so dispatch only sees known kinds.
func (h *InteractionHandler) decode(callback slackapi.InteractionCallback) (interaction, bool) {
	actions := callback.ActionCallback.AttachmentActions
	if len(actions) == 0 || actions[0] == nil {
		h.runner.logger.Warn("interaction carries no action", "callback_id", callback.CallbackID)
		return interaction{}, false
	}
	action := actions[0]

	in := interaction{
		kind: callback.CallbackID,
		requester: snack.Requester{
			ID:   callback.User.ID,
			Name: callback.User.Name,
		},
		responseURL: callback.ResponseURL,
	}

	switch callback.CallbackID {
	case slackmsg.CallbackRequestSnack:
		var nom slackmsg.InlineNomination
		if err := json.Unmarshal([]byte(action.Value), &nom); err != nil || nom.BoxedID == "" {
			h.runner.logger.Warn("undecodable nomination button value", "error", err)
			return interaction{}, false
		}
		in.inline = &nom
		return in, true

	case slackmsg.CallbackResolveSimilar:
		switch action.Name {
		case slackmsg.ActionNameAddToExisting:
			in.action = commands.ActionAddToExisting
		case slackmsg.ActionNameCreateNew:
			in.action = commands.ActionCreateNew
		default:
			h.runner.logger.Warn("unrecognized resolution action", "action", action.Name)
			return interaction{}, false
		}
		// Older clients baked the context into the button itself; accept
		// that shape as a decode fallback.
		if strings.HasPrefix(strings.TrimSpace(action.Value), "{") {
			var nom slackmsg.InlineNomination
			if err := json.Unmarshal([]byte(action.Value), &nom); err != nil || nom.BoxedID == "" {
				h.runner.logger.Warn("undecodable legacy button value", "error", err)
				return interaction{}, false
			}
			in.inline = &nom
		} else {
			in.token = action.Value
		}
		return in, true

	default:
		h.runner.logger.Warn("unrecognized interaction", "callback_id", callback.CallbackID)
		return interaction{}, false
	}
}

func (h *InteractionHandler) dispatch(in interaction) {
	switch in.kind {
	case slackmsg.CallbackRequestSnack:
		nom := *in.inline
		responseURL := in.responseURL
		h.runner.run(func(ctx context.Context) {
			requester := snack.Requester{ID: nom.RequesterID, Name: nom.RequesterName}
			_ = h.workflow.Nominate(ctx, nom.BoxedID, requester, responseURL)
		})

	case slackmsg.CallbackResolveSimilar:
		if in.inline != nil {
			state := legacyActionContext(*in.inline)
			action, responseURL := in.action, in.responseURL
			h.runner.run(func(ctx context.Context) {
				_ = h.workflow.ResolveInline(ctx, state, action, responseURL)
			})
			return
		}
		token, action, responseURL := in.token, in.action, in.responseURL
		h.runner.run(func(ctx context.Context) {
			_ = h.workflow.ResolveChoice(ctx, token, action, responseURL)
		})
	}
}

func legacyActionContext(nom slackmsg.InlineNomination) commands.ActionContext {
	state := commands.ActionContext{
		ProductID: nom.BoxedID,
		Requester: snack.Requester{ID: nom.RequesterID, Name: nom.RequesterName},
	}
	if id, err := uuid.Parse(nom.RequestID); err == nil {
		state.ExistingRequestID = id
	}
	return state
}
