// Package boxed is the HTTP client for the Boxed e-commerce catalog.
package boxed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"snackbot/internal/domain/snack"
	"snackbot/internal/pkg/config"
	"snackbot/internal/pkg/errs"
)

// Boxed rejects non-browser clients, so requests carry a desktop UA.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/71.0.3578.98 Safari/537.36"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.BoxedConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ProductURL is the public storefront URL for a product id.
func (c *Client) ProductURL(productID string) string {
	return c.baseURL + "/product/" + productID + "/product"
}

// Search runs a catalog text search. Pagination is not supported.
func (c *Client) Search(ctx context.Context, text string) ([]snack.Snack, error) {
	searchURL := c.baseURL + "/api/search/" + url.PathEscape(strings.TrimSpace(text))

	var resp searchResponse
	if err := c.getJSON(ctx, searchURL, &resp); err != nil {
		return nil, err
	}
	if resp.Data.ProductListEntities == nil {
		return nil, errs.New("invalid search response from catalog")
	}

	snacks := make([]snack.Snack, len(resp.Data.ProductListEntities))
	for i, p := range resp.Data.ProductListEntities {
		snacks[i] = p.toSnack()
	}
	return snacks, nil
}

// GetByID fetches product detail for a known product id.
func (c *Client) GetByID(ctx context.Context, productID string) (*snack.Snack, error) {
	if productID == "" {
		return nil, errs.ErrInvalidReference
	}

	var resp detailResponse
	err := c.getJSON(ctx, c.baseURL+"/api/product/"+url.PathEscape(productID), &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data.Product == nil {
		return nil, errs.ErrInvalidReference
	}

	s := resp.Data.Product.toSnack()
	return &s, nil
}

// GetByReference resolves a storefront product URL or a bare product id to
// a snack. References that cannot be parsed or looked up are reported as
// invalid, never as internal failures.
func (c *Client) GetByReference(ctx context.Context, ref string) (*snack.Snack, error) {
	id, err := ParseProductReference(ref)
	if err != nil {
		return nil, err
	}
	return c.GetByID(ctx, id)
}

// ParseProductReference extracts the product id from a storefront URL
// (https://www.boxed.com/product/<id>/...) or accepts a bare id as-is.
func ParseProductReference(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errs.ErrInvalidReference
	}

	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", errs.Mark(err, errs.ErrInvalidReference)
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) < 2 || parts[0] != "product" || parts[1] == "" {
			return "", errs.ErrInvalidReference
		}
		return parts[1], nil
	}

	if strings.ContainsAny(ref, " /") {
		return "", errs.ErrInvalidReference
	}
	return ref, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errs.ErrInvalidReference
	}
	if resp.StatusCode != http.StatusOK {
		return errs.New(fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode catalog response")
	}
	return nil
}

type productEntity struct {
	Name   string `json:"name"`
	Images []struct {
		OriginalBase string `json:"originalBase"`
	} `json:"images"`
	VariantObject struct {
		UPC     string `json:"upc"`
		GID     string `json:"gid"`
		Product struct {
			Brand            string `json:"brand"`
			LongDescription  string `json:"longDescription"`
			ShortDescription string `json:"shortDescription"`
		} `json:"product"`
	} `json:"variantObject"`
}

func (p productEntity) toSnack() snack.Snack {
	description := p.VariantObject.Product.LongDescription
	if description == "" {
		description = p.VariantObject.Product.ShortDescription
	}

	var imageURL string
	if len(p.Images) > 0 {
		imageURL = p.Images[0].OriginalBase
	}

	return snack.Snack{
		Name:        p.Name,
		Brand:       p.VariantObject.Product.Brand,
		Description: description,
		ImageURL:    imageURL,
		UPC:         p.VariantObject.UPC,
		BoxedID:     p.VariantObject.GID,
	}
}

type searchResponse struct {
	Data struct {
		ProductListEntities []productEntity `json:"productListEntities"`
	} `json:"data"`
}

type detailResponse struct {
	Data struct {
		Product *productEntity `json:"product"`
	} `json:"data"`
}
