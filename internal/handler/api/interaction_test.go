//go:build unit

package api_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"snackbot/internal/domain/snack"
	"snackbot/internal/handler/api"
	"snackbot/internal/pkg/config"
	"snackbot/internal/usecase/commands"
	"snackbot/tests/common/httptest"
	commandsmock "snackbot/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InteractionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockWorkflow *commandsmock.MockSnackWorkflow
	handler      *api.InteractionHandler
}

func (s *InteractionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWorkflow = commandsmock.NewMockSnackWorkflow(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = api.NewInteractionHandler(s.mockWorkflow, config.NewTestConfig(), logger)

	s.router.POST("/interactions", s.handler.Handle)
}

func (s *InteractionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInteractionHandlerSuite(t *testing.T) {
	suite.Run(t, new(InteractionHandlerTestSuite))
}

func interactionForm(callbackID, actionName, actionValue string) url.Values {
	payload := fmt.Sprintf(`{
		"type": "interactive_message",
		"callback_id": %q,
		"user": {"id": "U777888", "name": "bob"},
		"response_url": "https://hooks.slack.test/response/T123",
		"actions": [{"name": %q, "type": "button", "value": %q}]
	}`, callbackID, actionName, actionValue)
	return url.Values{"payload": {payload}}
}

func (s *InteractionHandlerTestSuite) awaitOr(done <-chan struct{}, msg string) {
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail(msg)
	}
}

func (s *InteractionHandlerTestSuite) TestRequestSnackButtonNominates() {
	done := make(chan struct{})
	s.mockWorkflow.EXPECT().
		Nominate(gomock.Any(), "gid-almonds-001", snack.Requester{ID: "U123456", Name: "alice"}, "https://hooks.slack.test/response/T123").
		DoAndReturn(func(_, _, _, _ any) error {
			close(done)
			return nil
		}).Times(1)

	// the button carries the original requester, not the clicker
	value := `{"boxedId":"gid-almonds-001","requesterId":"U123456","requesterName":"alice"}`
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("request_snack", "request_snack", value))

	s.Equal(http.StatusOK, w.Code)
	s.awaitOr(done, "nomination was never dispatched")
}

func (s *InteractionHandlerTestSuite) TestResolveSimilarTokenAddToExisting() {
	done := make(chan struct{})
	s.mockWorkflow.EXPECT().
		ResolveChoice(gomock.Any(), "tok-123", commands.ActionAddToExisting, "https://hooks.slack.test/response/T123").
		DoAndReturn(func(_, _, _, _ any) error {
			close(done)
			return nil
		}).Times(1)

	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("resolve_similar", "add_to_existing", "tok-123"))

	s.Equal(http.StatusOK, w.Code)
	s.awaitOr(done, "resolution was never dispatched")
}

func (s *InteractionHandlerTestSuite) TestResolveSimilarTokenCreateNew() {
	done := make(chan struct{})
	s.mockWorkflow.EXPECT().
		ResolveChoice(gomock.Any(), "tok-123", commands.ActionCreateNew, "https://hooks.slack.test/response/T123").
		DoAndReturn(func(_, _, _, _ any) error {
			close(done)
			return nil
		}).Times(1)

	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("resolve_similar", "create_new", "tok-123"))

	s.Equal(http.StatusOK, w.Code)
	s.awaitOr(done, "resolution was never dispatched")
}

func (s *InteractionHandlerTestSuite) TestResolveSimilarLegacyInlineValue() {
	requestID := uuid.New()
	done := make(chan struct{})
	s.mockWorkflow.EXPECT().
		ResolveInline(gomock.Any(),
			commands.ActionContext{
				ProductID:         "gid-almonds-001",
				Requester:         snack.Requester{ID: "U123456", Name: "alice"},
				ExistingRequestID: requestID,
			},
			commands.ActionAddToExisting,
			"https://hooks.slack.test/response/T123").
		DoAndReturn(func(_, _, _, _ any) error {
			close(done)
			return nil
		}).Times(1)

	value := fmt.Sprintf(`{"boxedId":"gid-almonds-001","requesterId":"U123456","requesterName":"alice","requestId":%q}`, requestID)
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("resolve_similar", "add_to_existing", value))

	s.Equal(http.StatusOK, w.Code)
	s.awaitOr(done, "legacy resolution was never dispatched")
}

func (s *InteractionHandlerTestSuite) TestUnknownCallbackIsAcknowledgedAndDropped() {
	// no workflow expectations: the payload must be ignored
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("some_future_feature", "whatever", "x"))

	s.Equal(http.StatusOK, w.Code)
}

func (s *InteractionHandlerTestSuite) TestUnknownResolutionActionIsDropped() {
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions",
		interactionForm("resolve_similar", "archive", "tok-123"))

	s.Equal(http.StatusOK, w.Code)
}

func (s *InteractionHandlerTestSuite) TestMissingPayloadIsAcknowledged() {
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/interactions", url.Values{})

	s.Equal(http.StatusOK, w.Code)
}
