// Package slackmsg renders and delivers the service's Slack messages.
package slackmsg

import (
	"encoding/json"
	"fmt"

	"snackbot/internal/domain/snack"
	"snackbot/internal/usecase/queries"

	"github.com/slack-go/slack"
)

// Interaction callback ids and action names. Button values are either an
// opaque action-state token (resolve_similar) or an inline nomination
// payload (request_snack).
const (
	CallbackRequestSnack   = "request_snack"
	CallbackResolveSimilar = "resolve_similar"

	ActionNameRequestSnack  = "request_snack"
	ActionNameAddToExisting = "add_to_existing"
	ActionNameCreateNew     = "create_new"
)

// InlineNomination is the JSON blob carried by search-result buttons, and
// accepted as a legacy fallback on resolution buttons.
type InlineNomination struct {
	BoxedID       string `json:"boxedId"`
	RequesterID   string `json:"requesterId"`
	RequesterName string `json:"requesterName"`
	RequestID     string `json:"requestId,omitempty"`
}

func (n InlineNomination) Encode() string {
	b, _ := json.Marshal(n)
	return string(b)
}

// ProductURLBuilder turns a product id into its storefront URL.
type ProductURLBuilder interface {
	ProductURL(productID string) string
}

func requestFields(urls ProductURLBuilder, req *snack.Request, except ...string) []slack.AttachmentField {
	s := req.Snack()
	fields := []slack.AttachmentField{
		{Title: "Name", Value: s.Name, Short: false},
		{Title: "Brand", Value: s.Brand, Short: true},
		{Title: "URL", Value: urls.ProductURL(s.BoxedID), Short: true},
		{Title: "First Requested By", Value: req.InitialRequester().Name, Short: true},
		{Title: "Number of Requests", Value: fmt.Sprintf("%d", req.RequesterCount()), Short: true},
	}

	out := fields[:0]
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		excluded := false
		for _, title := range except {
			if f.Title == title {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, f)
		}
	}
	return out
}

func createdRequestMessage(urls ProductURLBuilder, req *snack.Request) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Attachments: []slack.Attachment{{
			Pretext:  fmt.Sprintf("🎉 A request has been created for %s! 🎉", req.Snack().Name),
			ImageURL: req.Snack().ImageURL,
			Fields:   requestFields(urls, req, "Number of Requests"),
		}},
	}
}

func addedRequesterMessage(urls ProductURLBuilder, req *snack.Request) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Attachments: []slack.Attachment{{
			Pretext: fmt.Sprintf("%s was already added to the request list 😌\nI'll just make a note that you want that too ✅", req.Snack().Name),
			ImageURL: req.Snack().ImageURL,
			Fields:   requestFields(urls, req),
		}},
	}
}

func alreadyRequestedMessage(urls ProductURLBuilder, req *snack.Request) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Attachments: []slack.Attachment{{
			Pretext:  fmt.Sprintf("😒 You've already requested %s 😒", req.Snack().Name),
			ImageURL: req.Snack().ImageURL,
			Fields:   requestFields(urls, req),
		}},
	}
}

func similarRequestMessage(urls ProductURLBuilder, existing *snack.Request, candidate snack.Snack, token string) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text: "That looks a lot like something someone already requested 🤔",
		Attachments: []slack.Attachment{
			{
				Title:    "Already on the list",
				ImageURL: existing.Snack().ImageURL,
				Fields:   requestFields(urls, existing),
				Color:    "#36a64f",
			},
			{
				Title:    "Your nomination",
				ImageURL: candidate.ImageURL,
				Fields: []slack.AttachmentField{
					{Title: "Name", Value: candidate.Name, Short: false},
					{Title: "Brand", Value: candidate.Brand, Short: true},
					{Title: "URL", Value: urls.ProductURL(candidate.BoxedID), Short: true},
				},
				Color: "#439fe0",
			},
			{
				Text:       "Are these the same thing?",
				CallbackID: CallbackResolveSimilar,
				Actions: []slack.AttachmentAction{
					{
						Name:  ActionNameAddToExisting,
						Text:  "Add my vote to the existing request",
						Type:  "button",
						Value: token,
					},
					{
						Name:  ActionNameCreateNew,
						Text:  "Request it anyway",
						Type:  "button",
						Value: token,
						Style: "danger",
					},
				},
			},
		},
	}
}

func choiceTimedOutMessage() *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text: "⏳ That request timed out. Please run the command again.",
	}
}

func invalidReferenceMessage(ref string) *slack.WebhookMessage {
	text := "I couldn't make sense of that product reference. Paste a Boxed product link or id."
	if ref != "" {
		text = fmt.Sprintf("I couldn't make sense of `%s`. Paste a Boxed product link or id.", ref)
	}
	return &slack.WebhookMessage{Text: text}
}

func internalErrorMessage() *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text: "😔 Something went wrong on my end. Please try again in a bit.",
	}
}

// SearchResultsMessage is the synchronous reply to a catalog search: up to
// ten candidates, each with a button that nominates it on behalf of the
// searching user.
func SearchResultsMessage(products []queries.ProductView, requesterID, requesterName string) *slack.Msg {
	if len(products) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No snacks matched that search 🕵️",
		}
	}

	attachments := make([]slack.Attachment, len(products))
	for i, p := range products {
		value := InlineNomination{
			BoxedID:       p.BoxedID,
			RequesterID:   requesterID,
			RequesterName: requesterName,
		}.Encode()

		attachments[i] = slack.Attachment{
			Title:      p.Name,
			TitleLink:  p.BoxedURL,
			Text:       p.Description,
			ThumbURL:   p.ImageURL,
			CallbackID: CallbackRequestSnack,
			Fields: []slack.AttachmentField{
				{Title: "Brand", Value: p.Brand, Short: true},
				{Title: "UPC", Value: p.UPC, Short: true},
			},
			Actions: []slack.AttachmentAction{{
				Name:  ActionNameRequestSnack,
				Text:  "Request this",
				Type:  "button",
				Value: value,
			}},
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Found %d snacks:", len(products)),
		Attachments:  attachments,
	}
}
