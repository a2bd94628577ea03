//go:build unit

package queries_test

import (
	"context"
	"testing"

	"snackbot/internal/domain/snack"
	"snackbot/internal/pkg/errs"
	"snackbot/internal/usecase/queries"
	"snackbot/tests/common/builder"
	queriesmock "snackbot/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCatalog *queriesmock.MockCatalogReadStore
	queries     queries.SearchQueries
}

func (s *SearchQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.queries = queries.NewSearchQueries(s.mockCatalog)
}

func (s *SearchQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchQueriesSuite(t *testing.T) {
	suite.Run(t, new(SearchQueriesTestSuite))
}

func (s *SearchQueriesTestSuite) TestSearchProductsMapsCatalogHits() {
	hit := builder.NewSnackBuilder().Build()
	s.mockCatalog.EXPECT().Search(gomock.Any(), "almonds").
		Return([]snack.Snack{hit}, nil).Times(1)
	s.mockCatalog.EXPECT().ProductURL(hit.BoxedID).
		Return("https://www.boxed.com/product/gid-almonds-001/product").Times(1)

	views, err := s.queries.SearchProducts(context.Background(), "almonds")
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(hit.Name, views[0].Name)
	s.Equal(hit.Brand, views[0].Brand)
	s.Equal(hit.UPC, views[0].UPC)
	s.Equal(hit.BoxedID, views[0].BoxedID)
	s.Equal("https://www.boxed.com/product/gid-almonds-001/product", views[0].BoxedURL)
}

func (s *SearchQueriesTestSuite) TestSearchProductsCapsResultCount() {
	hits := make([]snack.Snack, queries.MaxSearchResults+5)
	for i := range hits {
		hits[i] = builder.NewSnackBuilder().Build()
	}
	s.mockCatalog.EXPECT().Search(gomock.Any(), "snacks").
		Return(hits, nil).Times(1)
	s.mockCatalog.EXPECT().ProductURL(gomock.Any()).
		Return("https://www.boxed.com/product/x/product").Times(queries.MaxSearchResults)

	views, err := s.queries.SearchProducts(context.Background(), "snacks")
	s.Require().NoError(err)
	s.Len(views, queries.MaxSearchResults)
}

func (s *SearchQueriesTestSuite) TestSearchProductsPropagatesCatalogFailure() {
	s.mockCatalog.EXPECT().Search(gomock.Any(), "almonds").
		Return(nil, errs.New("catalog unavailable")).Times(1)

	views, err := s.queries.SearchProducts(context.Background(), "almonds")
	s.Require().Error(err)
	s.Nil(views)
}
