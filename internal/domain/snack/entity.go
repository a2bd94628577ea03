package snack

import (
	"time"

	"snackbot/internal/pkg/errs"
	"snackbot/internal/pkg/textfold"

	"github.com/google/uuid"
)

var (
	ErrMissingSnackName = errs.New("snack name is required")
	ErrMissingProductID = errs.New("snack product id is required")
	ErrMissingRequester = errs.New("requester id is required")
)

// Snack is the catalog item embedded in a request. Immutable once attached.
type Snack struct {
	Name        string
	Brand       string
	Description string
	ImageURL    string
	UPC         string
	BoxedID     string // canonical dedup key
}

func (s Snack) Validate() error {
	if s.Name == "" {
		return ErrMissingSnackName
	}
	if s.BoxedID == "" {
		return ErrMissingProductID
	}
	return nil
}

// Requester identifies a workspace user. Equality is by ID only.
type Requester struct {
	ID   string
	Name string
}

// Request is the aggregate root for one requested snack. The initial
// requester is set at creation and never changes; additional requesters are
// unique by user id and ordered by insertion.
type Request struct {
	id                   uuid.UUID
	requestText          string
	snack                Snack
	initialRequester     Requester
	additionalRequesters []Requester
	createdAt            time.Time
	updatedAt            time.Time
}

func NewRequest(requestText string, s Snack, requester Requester, now time.Time) (*Request, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if requester.ID == "" {
		return nil, ErrMissingRequester
	}

	return &Request{
		id:               uuid.New(),
		requestText:      textfold.Fold(requestText),
		snack:            s,
		initialRequester: requester,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructRequest rebuilds an aggregate from persisted state.
func ReconstructRequest(id uuid.UUID, requestText string, s Snack, initial Requester, additional []Requester, createdAt, updatedAt time.Time) *Request {
	return &Request{
		id:                   id,
		requestText:          requestText,
		snack:                s,
		initialRequester:     initial,
		additionalRequesters: additional,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) RequestText() string         { return r.requestText }
func (r *Request) Snack() Snack                { return r.snack }
func (r *Request) InitialRequester() Requester { return r.initialRequester }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }

func (r *Request) AdditionalRequesters() []Requester {
	out := make([]Requester, len(r.additionalRequesters))
	copy(out, r.additionalRequesters)
	return out
}

// RequesterCount is the initial requester plus all additional ones.
func (r *Request) RequesterCount() int {
	return 1 + len(r.additionalRequesters)
}

func (r *Request) HasRequester(userID string) bool {
	if r.initialRequester.ID == userID {
		return true
	}
	for _, a := range r.additionalRequesters {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// AddRequester appends a requester to the additional set. Adding a user that
// is already a member (initial or additional) is a no-op and returns false.
func (r *Request) AddRequester(requester Requester, now time.Time) bool {
	if r.HasRequester(requester.ID) {
		return false
	}
	r.additionalRequesters = append(r.additionalRequesters, requester)
	r.updatedAt = now
	return true
}
