package shoecard

import (
	"net/url"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Card — готовая к отображению карточка товара.
type Card struct {
	Slug          string  `json:"slug"`
	Href          string  `json:"href"`
	Name          string  `json:"name"`
	ImageSrc      string  `json:"image_src"`
	Variant       Variant `json:"variant"`
	Tag           string  `json:"tag,omitempty"`
	PriceText     string  `json:"price"`
	SalePriceText string  `json:"sale_price,omitempty"`
	PriceStruck   bool    `json:"price_struck"`
	ColorInfo     string  `json:"color_info"`
}

// NewCard строит карточку товара на момент now.
// Для товара на распродаже обычная цена зачёркивается, рядом показывается цена со скидкой.
func NewCard(shoe *domain.Shoe, now time.Time) Card {
	variant := ResolveVariant(shoe, now)

	card := Card{
		Slug:      shoe.Slug,
		Href:      "/shoe/" + url.PathEscape(shoe.Slug),
		Name:      shoe.Name,
		ImageSrc:  shoe.ImageSrc,
		Variant:   variant,
		Tag:       variant.Tag(),
		PriceText: FormatCents(shoe.Price),
		ColorInfo: Pluralize("Color", shoe.NumOfColors),
	}

	if shoe.SalePrice != nil {
		card.SalePriceText = FormatCents(*shoe.SalePrice)
		card.PriceStruck = true
	}

	return card
}

// NewCards строит карточки для списка товаров с одним и тем же now.
func NewCards(shoes []domain.Shoe, now time.Time) []Card {
	cards := make([]Card, 0, len(shoes))
	for i := range shoes {
		cards = append(cards, NewCard(&shoes[i], now))
	}

	return cards
}

// Filter оставляет карточки заданного варианта.
func Filter(cards []Card, variant Variant) []Card {
	res := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Variant == variant {
			res = append(res, c)
		}
	}

	return res
}
