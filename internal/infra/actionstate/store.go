// Package actionstate stores pending interaction context in Redis. Slack
// buttons can only round-trip a small opaque value, so the full context is
// parked here under a short token with a TTL.
package actionstate

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"snackbot/internal/pkg/errs"
	"snackbot/internal/usecase/commands"

	"github.com/lithammer/shortuuid/v4"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "actionstate:"

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Put(ctx context.Context, state commands.ActionContext, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode action context")
	}

	token := shortuuid.New()
	if err := s.client.Set(ctx, keyPrefix+token, payload, ttl).Err(); err != nil {
		return "", errs.Wrap(err, "failed to store action context")
	}
	return token, nil
}

// Take retrieves and deletes in one round trip (GETDEL), so a double click
// or a retry can never observe the same context twice. Missing and expired
// tokens both come back as (nil, nil).
func (s *Store) Take(ctx context.Context, token string) (*commands.ActionContext, error) {
	payload, err := s.client.GetDel(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to take action context")
	}

	var state commands.ActionContext
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errs.Wrap(err, "failed to decode action context")
	}
	return &state, nil
}
