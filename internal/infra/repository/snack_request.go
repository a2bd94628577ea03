package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"snackbot/internal/domain/snack"
	"snackbot/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx pool/tx behavior the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SnackRequestRepository struct {
	db DBTX
}

func NewSnackRequestRepository(db DBTX) *SnackRequestRepository {
	return &SnackRequestRepository{db: db}
}

const snackRequestColumns = `
	id, request_text,
	snack_name, snack_brand, snack_description, snack_image_url, snack_upc, snack_boxed_id,
	initial_requester_id, initial_requester_name, additional_requesters,
	created_at, updated_at`

func (r *SnackRequestRepository) FindByUPC(ctx context.Context, upc string) (*snack.Request, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+snackRequestColumns+`
		FROM snack_requests
		WHERE snack_upc = $1 AND snack_upc <> ''
		LIMIT 1`, upc)

	return r.scanRequest(row, "failed to find snack request by upc")
}

// FindByText ranks stored requests against the query over request text and
// snack name, returning the single most relevant match.
func (r *SnackRequestRepository) FindByText(ctx context.Context, query string) (*snack.Request, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+snackRequestColumns+`
		FROM snack_requests
		WHERE to_tsvector('english', request_text || ' ' || snack_name) @@ websearch_to_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english', request_text || ' ' || snack_name),
			websearch_to_tsquery('english', $1)
		) DESC
		LIMIT 1`, query)

	return r.scanRequest(row, "failed to find snack request by text")
}

func (r *SnackRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*snack.Request, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+snackRequestColumns+`
		FROM snack_requests
		WHERE id = $1`, id)

	return r.scanRequest(row, "failed to find snack request by id")
}

func (r *SnackRequestRepository) Save(ctx context.Context, req *snack.Request) error {
	additional, err := json.Marshal(requesterRecordsFrom(req.AdditionalRequesters()))
	if err != nil {
		return infra.WrapRepoErr("failed to encode additional requesters", err)
	}

	s := req.Snack()
	_, err = r.db.Exec(ctx, `
		INSERT INTO snack_requests (
			id, request_text,
			snack_name, snack_brand, snack_description, snack_image_url, snack_upc, snack_boxed_id,
			initial_requester_id, initial_requester_name, additional_requesters,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			additional_requesters = EXCLUDED.additional_requesters,
			updated_at = EXCLUDED.updated_at`,
		req.ID(), req.RequestText(),
		s.Name, s.Brand, s.Description, s.ImageURL, s.UPC, s.BoxedID,
		req.InitialRequester().ID, req.InitialRequester().Name, additional,
		req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save snack request", err)
	}
	return nil
}

type requesterRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func requesterRecordsFrom(rs []snack.Requester) []requesterRecord {
	out := make([]requesterRecord, len(rs))
	for i, r := range rs {
		out[i] = requesterRecord{ID: r.ID, Name: r.Name}
	}
	return out
}

func (r *SnackRequestRepository) scanRequest(row pgx.Row, failMsg string) (*snack.Request, error) {
	var (
		id                   uuid.UUID
		requestText          string
		s                    snack.Snack
		initialID            string
		initialName          string
		additionalRaw        []byte
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &requestText,
		&s.Name, &s.Brand, &s.Description, &s.ImageURL, &s.UPC, &s.BoxedID,
		&initialID, &initialName, &additionalRaw,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}

	var records []requesterRecord
	if err := json.Unmarshal(additionalRaw, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode additional requesters", err)
	}
	additional := make([]snack.Requester, len(records))
	for i, rec := range records {
		additional[i] = snack.Requester{ID: rec.ID, Name: rec.Name}
	}

	return snack.ReconstructRequest(
		id, requestText, s,
		snack.Requester{ID: initialID, Name: initialName},
		additional, createdAt, updatedAt,
	), nil
}
