package commands

import (
	"context"
	"errors"
	"log/slog"

	"snackbot/internal/domain/snack"
	"snackbot/internal/pkg/clock"
	"snackbot/internal/pkg/config"
	"snackbot/internal/pkg/errs"
	"snackbot/internal/pkg/textfold"

	"github.com/google/uuid"
)

// ChosenAction is the user's answer to a similarity-resolution prompt.
type ChosenAction string

const (
	ActionAddToExisting ChosenAction = "add_to_existing"
	ActionCreateNew     ChosenAction = "create_new"
)

// SnackWorkflow drives nomination and conflict resolution. Both entry points
// run after the triggering HTTP exchange has already been acknowledged, so
// every outcome (success or failure) is reported through the Notifier; the
// returned error exists for the caller's logging only.
type SnackWorkflow interface {
	Nominate(ctx context.Context, ref string, requester snack.Requester, responseURL string) error
	ResolveChoice(ctx context.Context, token string, action ChosenAction, responseURL string) error
	// ResolveInline handles the legacy button encoding that carries the
	// action context inline instead of a stored token.
	ResolveInline(ctx context.Context, state ActionContext, action ChosenAction, responseURL string) error
}

type workflowImpl struct {
	repo     SnackRequestRepository
	catalog  ProductCatalog
	store    ActionStateStore
	notifier Notifier
	clock    clock.Clock
	cfg      config.WorkflowConfig
	logger   *slog.Logger
}

func NewSnackWorkflow(
	repo SnackRequestRepository,
	catalog ProductCatalog,
	store ActionStateStore,
	notifier Notifier,
	clk clock.Clock,
	cfg config.WorkflowConfig,
	logger *slog.Logger,
) SnackWorkflow {
	return &workflowImpl{
		repo:     repo,
		catalog:  catalog,
		store:    store,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
	}
}

func (w *workflowImpl) Nominate(ctx context.Context, ref string, requester snack.Requester, responseURL string) error {
	err := w.nominate(ctx, ref, requester, responseURL, uuid.Nil)
	return w.report(ctx, responseURL, ref, err)
}

func (w *workflowImpl) ResolveChoice(ctx context.Context, token string, action ChosenAction, responseURL string) error {
	err := w.resolveToken(ctx, token, action, responseURL)
	return w.report(ctx, responseURL, "", err)
}

func (w *workflowImpl) ResolveInline(ctx context.Context, state ActionContext, action ChosenAction, responseURL string) error {
	err := w.resolve(ctx, state, action, responseURL)
	return w.report(ctx, responseURL, state.ProductID, err)
}

// report translates a workflow failure into a user-visible follow-up.
// Validation-class errors get specific messages; everything else is reported
// generically and never propagated raw to the messaging platform.
func (w *workflowImpl) report(ctx context.Context, responseURL, ref string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrInvalidReference):
		if nerr := w.notifier.InvalidReference(ctx, responseURL, ref); nerr != nil {
			w.logger.Error("failed to deliver invalid-reference notice", "error", nerr)
		}
	case errors.Is(err, errs.ErrActionExpired):
		if nerr := w.notifier.ChoiceTimedOut(ctx, responseURL); nerr != nil {
			w.logger.Error("failed to deliver timeout notice", "error", nerr)
		}
	case errors.Is(err, errs.ErrUnrecognizedAction):
		w.logger.Warn("ignoring unrecognized interaction action")
		return nil
	default:
		w.logger.Error("workflow failed", "error", err)
		if nerr := w.notifier.InternalError(ctx, responseURL); nerr != nil {
			w.logger.Error("failed to deliver internal-error notice", "error", nerr)
		}
	}
	return err
}

// nominate is entry point A. excludeID marks a stored request the invoker has
// already chosen to diverge from: when the re-run of a "create new" choice
// finds that same request again it must not re-prompt, only a different
// (concurrently created) match may.
func (w *workflowImpl) nominate(ctx context.Context, ref string, requester snack.Requester, responseURL string, excludeID uuid.UUID) error {
	candidate, err := w.catalog.GetByReference(ctx, ref)
	if err != nil {
		return err
	}

	existing, err := w.findExisting(ctx, *candidate)
	if err != nil {
		return errs.Mark(err, errs.ErrLookupFailure)
	}
	if existing == nil {
		return w.createRequest(ctx, *candidate, requester, responseURL)
	}

	if snack.SameItem(existing.Snack(), *candidate) {
		return w.appendRequester(ctx, existing, requester, responseURL)
	}

	sim := snack.Compare(existing.Snack(), *candidate)
	if sim.SimilarEnough(w.cfg.NameThreshold, w.cfg.DescriptionThreshold) && existing.ID() != excludeID {
		return w.stageResolution(ctx, *candidate, requester, existing, responseURL)
	}

	return w.createRequest(ctx, *candidate, requester, responseURL)
}

func (w *workflowImpl) resolveToken(ctx context.Context, token string, action ChosenAction, responseURL string) error {
	state, err := w.store.Take(ctx, token)
	if err != nil {
		return err
	}
	if state == nil {
		return errs.ErrActionExpired
	}
	return w.resolve(ctx, *state, action, responseURL)
}

func (w *workflowImpl) resolve(ctx context.Context, state ActionContext, action ChosenAction, responseURL string) error {
	switch action {
	case ActionAddToExisting:
		if state.ExistingRequestID == uuid.Nil {
			// Legacy payloads carry no request reference; a fresh
			// resolution lands on the same append path via exact match.
			return w.nominate(ctx, state.ProductID, state.Requester, responseURL, uuid.Nil)
		}
		existing, err := w.repo.FindByID(ctx, state.ExistingRequestID)
		if err != nil {
			return errs.Mark(err, errs.ErrLookupFailure)
		}
		if existing == nil {
			return errs.ErrRequestNotFound
		}
		return w.appendRequester(ctx, existing, state.Requester, responseURL)
	case ActionCreateNew:
		// Intentional full re-run: a second similar request may have been
		// created between the prompt and the click.
		return w.nominate(ctx, state.ProductID, state.Requester, responseURL, state.ExistingRequestID)
	default:
		w.logger.Warn("unrecognized resolution action", "action", string(action))
		return errs.ErrUnrecognizedAction
	}
}

// findExisting applies the lookup precedence: exact UPC first, then
// relevance-ranked text search over the snack name. A UPC hit is never
// overridden by a text match.
func (w *workflowImpl) findExisting(ctx context.Context, candidate snack.Snack) (*snack.Request, error) {
	if candidate.UPC != "" {
		existing, err := w.repo.FindByUPC(ctx, candidate.UPC)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return w.repo.FindByText(ctx, textfold.Fold(candidate.Name))
}

func (w *workflowImpl) createRequest(ctx context.Context, candidate snack.Snack, requester snack.Requester, responseURL string) error {
	req, err := snack.NewRequest(candidate.Name, candidate, requester, w.clock.Now())
	if err != nil {
		return err
	}
	if err := w.repo.Save(ctx, req); err != nil {
		return errs.Mark(err, errs.ErrLookupFailure)
	}
	w.logger.Info("snack request created",
		"request_id", req.ID().String(),
		"product_id", candidate.BoxedID,
		"requester_id", requester.ID)
	return w.notifier.RequestCreated(ctx, responseURL, req)
}

func (w *workflowImpl) appendRequester(ctx context.Context, existing *snack.Request, requester snack.Requester, responseURL string) error {
	if !existing.AddRequester(requester, w.clock.Now()) {
		return w.notifier.AlreadyRequested(ctx, responseURL, existing)
	}
	if err := w.repo.Save(ctx, existing); err != nil {
		return errs.Mark(err, errs.ErrLookupFailure)
	}
	w.logger.Info("requester added to existing request",
		"request_id", existing.ID().String(),
		"requester_id", requester.ID)
	return w.notifier.RequesterAdded(ctx, responseURL, existing)
}

func (w *workflowImpl) stageResolution(ctx context.Context, candidate snack.Snack, requester snack.Requester, existing *snack.Request, responseURL string) error {
	state := ActionContext{
		ProductID:         candidate.BoxedID,
		Requester:         requester,
		ExistingRequestID: existing.ID(),
	}
	token, err := w.store.Put(ctx, state, w.cfg.PendingChoiceTTL)
	if err != nil {
		return err
	}
	w.logger.Info("similarity conflict staged",
		"existing_request_id", existing.ID().String(),
		"product_id", candidate.BoxedID)
	return w.notifier.SimilarRequestFound(ctx, responseURL, existing, candidate, token)
}
