//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"snackbot/internal/domain/snack"
	"snackbot/internal/pkg/clock"
	"snackbot/internal/pkg/config"
	"snackbot/internal/pkg/errs"
	"snackbot/internal/usecase/commands"
	"snackbot/tests/common/builder"
	commandsmock "snackbot/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const responseURL = "https://hooks.slack.test/response/T123"

type SnackWorkflowTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockSnackRequestRepository
	mockCatalog  *commandsmock.MockProductCatalog
	mockStore    *commandsmock.MockActionStateStore
	mockNotifier *commandsmock.MockNotifier
	clock        *clock.MockClock
	cfg          config.WorkflowConfig
	workflow     commands.SnackWorkflow
}

func (s *SnackWorkflowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockSnackRequestRepository(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockProductCatalog(s.mockCtrl)
	s.mockStore = commandsmock.NewMockActionStateStore(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.WorkflowConfig{
		NameThreshold:        0.7,
		DescriptionThreshold: 0.8,
		PendingChoiceTTL:     5 * time.Minute,
	}
	s.workflow = commands.NewSnackWorkflow(
		s.mockRepo,
		s.mockCatalog,
		s.mockStore,
		s.mockNotifier,
		s.clock,
		s.cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *SnackWorkflowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSnackWorkflowSuite(t *testing.T) {
	suite.Run(t, new(SnackWorkflowTestSuite))
}

func (s *SnackWorkflowTestSuite) requester() snack.Requester {
	return snack.Requester{ID: "U777888", Name: "bob"}
}

// ================================================================================
// Nominate
// ================================================================================

func (s *SnackWorkflowTestSuite) TestNominateCreatesNewRequest() {
	candidate := builder.NewSnackBuilder().Build()
	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByUPC(gomock.Any(), candidate.UPC).
		Return(nil, nil).Times(1)
	s.mockRepo.EXPECT().FindByText(gomock.Any(), "chocolate covered almonds").
		Return(nil, nil).Times(1)

	var saved *snack.Request
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *snack.Request) error {
			saved = req
			return nil
		}).Times(1)
	s.mockNotifier.EXPECT().RequestCreated(gomock.Any(), responseURL, gomock.Any()).
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(candidate, saved.Snack())
	s.Equal(s.requester(), saved.InitialRequester())
	s.Equal(s.clock.Now(), saved.CreatedAt())
}

func (s *SnackWorkflowTestSuite) TestNominateAppendsRequesterOnSameItem() {
	existing := builder.NewRequestBuilder().MustBuild()
	candidate := builder.NewSnackBuilder().Build() // same BoxedID as the builder default

	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByUPC(gomock.Any(), candidate.UPC).
		Return(existing, nil).Times(1)
	s.mockRepo.EXPECT().Save(gomock.Any(), existing).Return(nil).Times(1)
	s.mockNotifier.EXPECT().RequesterAdded(gomock.Any(), responseURL, existing).
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().NoError(err)
	s.True(existing.HasRequester("U777888"))
	s.Equal(2, existing.RequesterCount())
}

func (s *SnackWorkflowTestSuite) TestNominateAlreadyRequestedIsNotPersisted() {
	existing := builder.NewRequestBuilder().WithRequester("U777888", "bob").MustBuild()
	candidate := builder.NewSnackBuilder().Build()

	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByUPC(gomock.Any(), candidate.UPC).
		Return(existing, nil).Times(1)
	// no Save expectation: the repeat nomination must not write
	s.mockNotifier.EXPECT().AlreadyRequested(gomock.Any(), responseURL, existing).
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().NoError(err)
	s.Equal(1, existing.RequesterCount())
}

func (s *SnackWorkflowTestSuite) TestNominateStagesPromptForSimilarDistinctItem() {
	existing := builder.NewRequestBuilder().MustBuild()
	// Same name and description, different product and no shared identifiers.
	candidate := builder.NewSnackBuilder().
		WithUPC("").
		WithBoxedID("gid-almonds-dark-002").
		Build()

	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByText(gomock.Any(), "chocolate covered almonds").
		Return(existing, nil).Times(1)

	var staged commands.ActionContext
	s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), s.cfg.PendingChoiceTTL).
		DoAndReturn(func(_ context.Context, state commands.ActionContext, _ time.Duration) (string, error) {
			staged = state
			return "tok-123", nil
		}).Times(1)
	s.mockNotifier.EXPECT().SimilarRequestFound(gomock.Any(), responseURL, existing, candidate, "tok-123").
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().NoError(err)
	s.Equal(candidate.BoxedID, staged.ProductID)
	s.Equal(s.requester(), staged.Requester)
	s.Equal(existing.ID(), staged.ExistingRequestID)
}

func (s *SnackWorkflowTestSuite) TestNominateCreatesWhenTextMatchIsDissimilar() {
	existing := builder.NewRequestBuilder().MustBuild()
	candidate := builder.NewSnackBuilder().
		WithName("Sparkling Water Variety Pack").
		WithDescription("Naturally flavored sparkling water, zero calories.").
		WithUPC("").
		WithBoxedID("gid-water-009").
		Build()

	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByText(gomock.Any(), "sparkling water variety pack").
		Return(existing, nil).Times(1)
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockNotifier.EXPECT().RequestCreated(gomock.Any(), responseURL, gomock.Any()).
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().NoError(err)
}

func (s *SnackWorkflowTestSuite) TestNominateInvalidReference() {
	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "not-a-product").
		Return(nil, errs.ErrInvalidReference).Times(1)
	s.mockNotifier.EXPECT().InvalidReference(gomock.Any(), responseURL, "not-a-product").
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "not-a-product", s.requester(), responseURL)
	s.Require().ErrorIs(err, errs.ErrInvalidReference)
}

func (s *SnackWorkflowTestSuite) TestNominateRepoFailureReportsInternalError() {
	candidate := builder.NewSnackBuilder().Build()
	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), "ref").
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByUPC(gomock.Any(), candidate.UPC).
		Return(nil, errs.New("connection refused")).Times(1)
	s.mockNotifier.EXPECT().InternalError(gomock.Any(), responseURL).
		Return(nil).Times(1)

	err := s.workflow.Nominate(context.Background(), "ref", s.requester(), responseURL)
	s.Require().ErrorIs(err, errs.ErrLookupFailure)
}

// ================================================================================
// ResolveChoice
// ================================================================================

func (s *SnackWorkflowTestSuite) TestResolveChoiceExpiredToken() {
	s.mockStore.EXPECT().Take(gomock.Any(), "tok-gone").
		Return(nil, nil).Times(1)
	s.mockNotifier.EXPECT().ChoiceTimedOut(gomock.Any(), responseURL).
		Return(nil).Times(1)

	err := s.workflow.ResolveChoice(context.Background(), "tok-gone", commands.ActionAddToExisting, responseURL)
	s.Require().ErrorIs(err, errs.ErrActionExpired)
}

func (s *SnackWorkflowTestSuite) TestResolveChoiceAddToExisting() {
	existing := builder.NewRequestBuilder().MustBuild()
	state := &commands.ActionContext{
		ProductID:         "gid-almonds-dark-002",
		Requester:         s.requester(),
		ExistingRequestID: existing.ID(),
	}

	s.mockStore.EXPECT().Take(gomock.Any(), "tok-123").
		Return(state, nil).Times(1)
	s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).
		Return(existing, nil).Times(1)
	s.mockRepo.EXPECT().Save(gomock.Any(), existing).Return(nil).Times(1)
	s.mockNotifier.EXPECT().RequesterAdded(gomock.Any(), responseURL, existing).
		Return(nil).Times(1)

	err := s.workflow.ResolveChoice(context.Background(), "tok-123", commands.ActionAddToExisting, responseURL)
	s.Require().NoError(err)
	s.True(existing.HasRequester("U777888"))
}

func (s *SnackWorkflowTestSuite) TestResolveChoiceCreateNewSkipsKnownConflict() {
	existing := builder.NewRequestBuilder().MustBuild()
	candidate := builder.NewSnackBuilder().
		WithUPC("").
		WithBoxedID("gid-almonds-dark-002").
		Build()
	state := &commands.ActionContext{
		ProductID:         candidate.BoxedID,
		Requester:         s.requester(),
		ExistingRequestID: existing.ID(),
	}

	s.mockStore.EXPECT().Take(gomock.Any(), "tok-123").
		Return(state, nil).Times(1)
	// The re-run still re-checks the stores, but finding the same conflicting
	// request again must not re-prompt.
	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), candidate.BoxedID).
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByText(gomock.Any(), "chocolate covered almonds").
		Return(existing, nil).Times(1)
	s.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockNotifier.EXPECT().RequestCreated(gomock.Any(), responseURL, gomock.Any()).
		Return(nil).Times(1)

	err := s.workflow.ResolveChoice(context.Background(), "tok-123", commands.ActionCreateNew, responseURL)
	s.Require().NoError(err)
}

func (s *SnackWorkflowTestSuite) TestResolveChoiceCreateNewStillPromptsOnFreshConflict() {
	// A different similar request appeared between the prompt and the click.
	promptedID := uuid.New()
	freshConflict := builder.NewRequestBuilder().MustBuild()
	candidate := builder.NewSnackBuilder().
		WithUPC("").
		WithBoxedID("gid-almonds-dark-002").
		Build()
	state := &commands.ActionContext{
		ProductID:         candidate.BoxedID,
		Requester:         s.requester(),
		ExistingRequestID: promptedID,
	}

	s.mockStore.EXPECT().Take(gomock.Any(), "tok-123").
		Return(state, nil).Times(1)
	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), candidate.BoxedID).
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByText(gomock.Any(), "chocolate covered almonds").
		Return(freshConflict, nil).Times(1)
	s.mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), s.cfg.PendingChoiceTTL).
		Return("tok-456", nil).Times(1)
	s.mockNotifier.EXPECT().SimilarRequestFound(gomock.Any(), responseURL, freshConflict, candidate, "tok-456").
		Return(nil).Times(1)

	err := s.workflow.ResolveChoice(context.Background(), "tok-123", commands.ActionCreateNew, responseURL)
	s.Require().NoError(err)
}

func (s *SnackWorkflowTestSuite) TestResolveChoiceUnrecognizedActionIsDropped() {
	state := &commands.ActionContext{ProductID: "gid-almonds-001", Requester: s.requester()}
	s.mockStore.EXPECT().Take(gomock.Any(), "tok-123").
		Return(state, nil).Times(1)
	// no notifier expectations: the click is silently ignored

	err := s.workflow.ResolveChoice(context.Background(), "tok-123", commands.ChosenAction("archive"), responseURL)
	s.Require().NoError(err)
}

// ================================================================================
// ResolveInline (legacy payloads)
// ================================================================================

func (s *SnackWorkflowTestSuite) TestResolveInlineLegacyAddToExistingReRuns() {
	existing := builder.NewRequestBuilder().MustBuild()
	candidate := builder.NewSnackBuilder().Build()
	state := commands.ActionContext{
		ProductID: candidate.BoxedID,
		Requester: s.requester(),
		// legacy payloads have no stored request reference
		ExistingRequestID: uuid.Nil,
	}

	s.mockCatalog.EXPECT().GetByReference(gomock.Any(), candidate.BoxedID).
		Return(&candidate, nil).Times(1)
	s.mockRepo.EXPECT().FindByUPC(gomock.Any(), candidate.UPC).
		Return(existing, nil).Times(1)
	s.mockRepo.EXPECT().Save(gomock.Any(), existing).Return(nil).Times(1)
	s.mockNotifier.EXPECT().RequesterAdded(gomock.Any(), responseURL, existing).
		Return(nil).Times(1)

	err := s.workflow.ResolveInline(context.Background(), state, commands.ActionAddToExisting, responseURL)
	s.Require().NoError(err)
	s.True(existing.HasRequester("U777888"))
}
