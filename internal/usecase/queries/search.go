package queries

import (
	"context"

	"snackbot/internal/domain/snack"
)

// MaxSearchResults caps how many catalog matches a search reply lists.
const MaxSearchResults = 10

// ProductView is the read-side projection of a catalog hit.
type ProductView struct {
	Name        string
	Brand       string
	Description string
	ImageURL    string
	UPC         string
	BoxedID     string
	BoxedURL    string
}

// CatalogReadStore is the catalog search port consumed by the query side.
type CatalogReadStore interface {
	Search(ctx context.Context, text string) ([]snack.Snack, error)
	ProductURL(productID string) string
}

type SearchQueries interface {
	SearchProducts(ctx context.Context, text string) ([]ProductView, error)
}

type searchQueriesImpl struct {
	catalog CatalogReadStore
}

func NewSearchQueries(catalog CatalogReadStore) SearchQueries {
	return &searchQueriesImpl{catalog: catalog}
}

func (q *searchQueriesImpl) SearchProducts(ctx context.Context, text string) ([]ProductView, error) {
	snacks, err := q.catalog.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(snacks) > MaxSearchResults {
		snacks = snacks[:MaxSearchResults]
	}

	views := make([]ProductView, len(snacks))
	for i, s := range snacks {
		views[i] = ProductView{
			Name:        s.Name,
			Brand:       s.Brand,
			Description: s.Description,
			ImageURL:    s.ImageURL,
			UPC:         s.UPC,
			BoxedID:     s.BoxedID,
			BoxedURL:    q.catalog.ProductURL(s.BoxedID),
		}
	}
	return views, nil
}
