package shoecard

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Run("on sale", func(t *testing.T) {
		shoe := domain.Shoe{
			Slug:        "tail-wind",
			Name:        "Tail Wind",
			ImageSrc:    "http://img/tail-wind.jpg",
			Price:       16500,
			SalePrice:   cents(12500),
			ReleaseDate: now.AddDate(0, 0, -2),
			NumOfColors: 1,
		}

		card := NewCard(&shoe, now)

		assert.Equal(t, Card{
			Slug:          "tail-wind",
			Href:          "/shoe/tail-wind",
			Name:          "Tail Wind",
			ImageSrc:      "http://img/tail-wind.jpg",
			Variant:       VariantOnSale,
			Tag:           "Sale",
			PriceText:     "$165.00",
			SalePriceText: "$125.00",
			PriceStruck:   true,
			ColorInfo:     "1 Color",
		}, card)
	})

	t.Run("new release", func(t *testing.T) {
		shoe := domain.Shoe{Slug: "air-zoom", Name: "Air Zoom", Price: 5999, ReleaseDate: now.AddDate(0, 0, -5), NumOfColors: 3}

		card := NewCard(&shoe, now)

		assert.Equal(t, VariantNewRelease, card.Variant)
		assert.Equal(t, "Just Released!", card.Tag)
		assert.Equal(t, "$59.99", card.PriceText)
		assert.Empty(t, card.SalePriceText)
		assert.False(t, card.PriceStruck)
		assert.Equal(t, "3 Colors", card.ColorInfo)
	})

	t.Run("default", func(t *testing.T) {
		shoe := domain.Shoe{Slug: "old/school", Price: 10000, ReleaseDate: now.AddDate(-2, 0, 0)}

		card := NewCard(&shoe, now)

		assert.Equal(t, VariantDefault, card.Variant)
		assert.Empty(t, card.Tag)
		assert.Equal(t, "/shoe/old%2Fschool", card.Href)
		assert.Equal(t, "0 Colors", card.ColorInfo)
	})
}

func TestNewCardsAndFilter(t *testing.T) {
	shoes := []domain.Shoe{
		{Slug: "a", SalePrice: cents(100)},
		{Slug: "b", ReleaseDate: now.AddDate(0, 0, -1)},
		{Slug: "c", ReleaseDate: now.AddDate(-1, 0, 0)},
		{Slug: "d", SalePrice: cents(200), ReleaseDate: now},
	}

	cards := NewCards(shoes, now)
	require.Len(t, cards, 4)

	sale := Filter(cards, VariantOnSale)
	require.Len(t, sale, 2)
	assert.Equal(t, "a", sale[0].Slug)
	assert.Equal(t, "d", sale[1].Slug)

	fresh := Filter(cards, VariantNewRelease)
	require.Len(t, fresh, 1)
	assert.Equal(t, "b", fresh[0].Slug)

	assert.Empty(t, Filter(nil, VariantDefault))
}
