package builder

import (
	"time"

	"snackbot/internal/domain/snack"
)

// SnackBuilder builds snack.Snack values for tests with sensible defaults.
type SnackBuilder struct {
	s snack.Snack
}

func NewSnackBuilder() *SnackBuilder {
	return &SnackBuilder{
		s: snack.Snack{
			Name:        "Chocolate Covered Almonds",
			Brand:       "Blue Diamond",
			Description: "Whole roasted almonds covered in rich milk chocolate.",
			ImageURL:    "https://images.example.com/almonds.jpg",
			UPC:         "041570054161",
			BoxedID:     "gid-almonds-001",
		},
	}
}

func (b *SnackBuilder) WithName(name string) *SnackBuilder {
	b.s.Name = name
	return b
}

func (b *SnackBuilder) WithBrand(brand string) *SnackBuilder {
	b.s.Brand = brand
	return b
}

func (b *SnackBuilder) WithDescription(desc string) *SnackBuilder {
	b.s.Description = desc
	return b
}

func (b *SnackBuilder) WithUPC(upc string) *SnackBuilder {
	b.s.UPC = upc
	return b
}

func (b *SnackBuilder) WithBoxedID(id string) *SnackBuilder {
	b.s.BoxedID = id
	return b
}

func (b *SnackBuilder) Build() snack.Snack {
	return b.s
}

// RequestBuilder builds snack.Request aggregates for tests.
type RequestBuilder struct {
	text      string
	snack     snack.Snack
	requester snack.Requester
	now       time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		text:      "chocolate almonds",
		snack:     NewSnackBuilder().Build(),
		requester: snack.Requester{ID: "U123456", Name: "alice"},
		now:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) WithText(text string) *RequestBuilder {
	b.text = text
	return b
}

func (b *RequestBuilder) WithSnack(s snack.Snack) *RequestBuilder {
	b.snack = s
	return b
}

func (b *RequestBuilder) WithRequester(id, name string) *RequestBuilder {
	b.requester = snack.Requester{ID: id, Name: name}
	return b
}

func (b *RequestBuilder) WithNow(now time.Time) *RequestBuilder {
	b.now = now
	return b
}

func (b *RequestBuilder) Build() (*snack.Request, error) {
	return snack.NewRequest(b.text, b.snack, b.requester, b.now)
}

func (b *RequestBuilder) MustBuild() *snack.Request {
	req, err := b.Build()
	if err != nil {
		panic(err)
	}
	return req
}
