package slackmsg

import (
	"context"

	"snackbot/internal/domain/snack"
	"snackbot/internal/pkg/errs"

	"github.com/slack-go/slack"
)

// WebhookPoster posts a message to a one-time response URL.
type WebhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

// Notifier delivers workflow outcomes over Slack's delayed-response channel.
type Notifier struct {
	post WebhookPoster
	urls ProductURLBuilder
}

func NewNotifier(urls ProductURLBuilder) *Notifier {
	return &Notifier{post: slack.PostWebhookContext, urls: urls}
}

// NewNotifierWithPoster injects the delivery function, for tests.
func NewNotifierWithPoster(urls ProductURLBuilder, post WebhookPoster) *Notifier {
	return &Notifier{post: post, urls: urls}
}

func (n *Notifier) RequestCreated(ctx context.Context, responseURL string, req *snack.Request) error {
	return n.deliver(ctx, responseURL, createdRequestMessage(n.urls, req))
}

func (n *Notifier) RequesterAdded(ctx context.Context, responseURL string, req *snack.Request) error {
	return n.deliver(ctx, responseURL, addedRequesterMessage(n.urls, req))
}

func (n *Notifier) AlreadyRequested(ctx context.Context, responseURL string, req *snack.Request) error {
	return n.deliver(ctx, responseURL, alreadyRequestedMessage(n.urls, req))
}

func (n *Notifier) SimilarRequestFound(ctx context.Context, responseURL string, existing *snack.Request, candidate snack.Snack, token string) error {
	return n.deliver(ctx, responseURL, similarRequestMessage(n.urls, existing, candidate, token))
}

func (n *Notifier) ChoiceTimedOut(ctx context.Context, responseURL string) error {
	return n.deliver(ctx, responseURL, choiceTimedOutMessage())
}

func (n *Notifier) InvalidReference(ctx context.Context, responseURL, ref string) error {
	return n.deliver(ctx, responseURL, invalidReferenceMessage(ref))
}

func (n *Notifier) InternalError(ctx context.Context, responseURL string) error {
	return n.deliver(ctx, responseURL, internalErrorMessage())
}

func (n *Notifier) deliver(ctx context.Context, responseURL string, msg *slack.WebhookMessage) error {
	if responseURL == "" {
		return errs.New("missing response url")
	}
	if err := n.post(ctx, responseURL, msg); err != nil {
		return errs.Wrap(err, "failed to post delayed response")
	}
	return nil
}
