package commands

import (
	"context"
	"time"

	"snackbot/internal/domain/snack"

	"github.com/google/uuid"
)

// SnackRequestRepository is the write-side port for stored snack requests.
// Lookups return (nil, nil) when nothing matches.
type SnackRequestRepository interface {
	// FindByUPC is the exact-identifier lookup. It always takes precedence
	// over text search.
	FindByUPC(ctx context.Context, upc string) (*snack.Request, error)
	// FindByText runs a relevance-ranked full-text search over the stored
	// request text and snack name, returning the single best match.
	FindByText(ctx context.Context, query string) (*snack.Request, error)
	FindByID(ctx context.Context, id uuid.UUID) (*snack.Request, error)
	// Save upserts the aggregate; safe for both creation and
	// append-requester updates.
	Save(ctx context.Context, req *snack.Request) error
}

// ProductCatalog resolves product references against the external catalog.
type ProductCatalog interface {
	// GetByReference accepts a product URL or bare product id. An
	// unrecognizable or unknown reference yields errs.ErrInvalidReference.
	GetByReference(ctx context.Context, ref string) (*snack.Snack, error)
}

// ActionContext correlates an interactive button click with the nomination
// that produced it. ExistingRequestID is uuid.Nil unless the prompt was
// raised against a conflicting stored request.
type ActionContext struct {
	ProductID         string          `json:"product_id"`
	Requester         snack.Requester `json:"requester"`
	ExistingRequestID uuid.UUID       `json:"existing_request_id"`
}

// ActionStateStore is the short-lived token store backing pending prompts.
type ActionStateStore interface {
	// Put stores the context under a fresh opaque token with the given TTL.
	Put(ctx context.Context, state ActionContext, ttl time.Duration) (string, error)
	// Take retrieves and atomically deletes. A second take with the same
	// token, or one past TTL, returns (nil, nil).
	Take(ctx context.Context, token string) (*ActionContext, error)
}

// Notifier delivers follow-up messages to the command invoker over the
// platform's delayed-response channel. Delivery is best effort.
type Notifier interface {
	RequestCreated(ctx context.Context, responseURL string, req *snack.Request) error
	RequesterAdded(ctx context.Context, responseURL string, req *snack.Request) error
	AlreadyRequested(ctx context.Context, responseURL string, req *snack.Request) error
	SimilarRequestFound(ctx context.Context, responseURL string, existing *snack.Request, candidate snack.Snack, token string) error
	ChoiceTimedOut(ctx context.Context, responseURL string) error
	InvalidReference(ctx context.Context, responseURL, ref string) error
	InternalError(ctx context.Context, responseURL string) error
}
