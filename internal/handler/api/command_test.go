//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"snackbot/internal/handler/api"
	"snackbot/internal/pkg/config"
	"snackbot/internal/pkg/errs"
	"snackbot/internal/usecase/queries"
	"snackbot/tests/common/httptest"
	commandsmock "snackbot/tests/mock/commands"
	queriesmock "snackbot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommandHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockWorkflow *commandsmock.MockSnackWorkflow
	mockSearch   *queriesmock.MockSearchQueries
	handler      *api.CommandHandler
}

func (s *CommandHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWorkflow = commandsmock.NewMockSnackWorkflow(s.mockCtrl)
	s.mockSearch = queriesmock.NewMockSearchQueries(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = api.NewCommandHandler(s.mockWorkflow, s.mockSearch, config.NewTestConfig(), logger)

	s.router.POST("/commands/search", s.handler.Search)
	s.router.POST("/commands/nominate", s.handler.Nominate)
}

func (s *CommandHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommandHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommandHandlerTestSuite))
}

func slashCommandForm(text string) url.Values {
	return url.Values{
		"token":        {"gIkuvaNzQIHg97ATvDxqgjtO"},
		"team_id":      {"T0001"},
		"channel_id":   {"C2147483705"},
		"user_id":      {"U777888"},
		"user_name":    {"bob"},
		"command":      {"/snackrequest"},
		"text":         {text},
		"response_url": {"https://hooks.slack.test/response/T123"},
	}
}

// ================================================================================
// Search
// ================================================================================

func (s *CommandHandlerTestSuite) TestSearchReturnsResults() {
	s.mockSearch.EXPECT().SearchProducts(gomock.Any(), "popcorn").
		Return([]queries.ProductView{
			{Name: "Sea Salt Popcorn", BoxedID: "gid-popcorn-002", BoxedURL: "https://www.boxed.com/product/gid-popcorn-002/product"},
		}, nil).Times(1)

	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/commands/search", slashCommandForm("popcorn"))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Sea Salt Popcorn")
	s.Contains(w.Body.String(), "ephemeral")
}

func (s *CommandHandlerTestSuite) TestSearchWithoutTextHints() {
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/commands/search", slashCommandForm("  "))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Tell me what to search for")
}

func (s *CommandHandlerTestSuite) TestSearchCatalogFailureStaysFriendly() {
	s.mockSearch.EXPECT().SearchProducts(gomock.Any(), "popcorn").
		Return(nil, errs.New("catalog down")).Times(1)

	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/commands/search", slashCommandForm("popcorn"))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "catalog isn't answering")
	s.NotContains(w.Body.String(), "catalog down")
}

// ================================================================================
// Nominate
// ================================================================================

func (s *CommandHandlerTestSuite) TestNominateAcknowledgesThenRunsWorkflow() {
	done := make(chan struct{})
	s.mockWorkflow.EXPECT().
		Nominate(gomock.Any(), "https://www.boxed.com/product/gid-almonds-001/x", gomock.Any(), "https://hooks.slack.test/response/T123").
		DoAndReturn(func(_, _, _, _ any) error {
			close(done)
			return nil
		}).Times(1)

	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/commands/nominate",
		slashCommandForm("https://www.boxed.com/product/gid-almonds-001/x"))

	// the HTTP exchange finishes before the workflow does
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "On it!")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("workflow was never invoked")
	}
}

func (s *CommandHandlerTestSuite) TestNominateWithoutTextHints() {
	w := httptest.PerformForm(s.T(), s.router, http.MethodPost, "/commands/nominate", slashCommandForm(""))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "product link or id")
}
