// Package shoecard содержит правила карточки товара: выбор варианта оформления,
// форматирование цены и подписей. Все функции чистые: результат зависит только от аргументов.
package shoecard

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// Variant — вариант оформления карточки.
type Variant string

const (
	VariantOnSale     Variant = "on-sale"
	VariantNewRelease Variant = "new-release"
	VariantDefault    Variant = "default"
)

// ResolveVariant выбирает ровно один вариант для товара.
// Распродажа важнее новинки: товар, который одновременно новый и со скидкой, получает on-sale.
func ResolveVariant(shoe *domain.Shoe, now time.Time) Variant {
	switch {
	case shoe.SalePrice != nil:
		return VariantOnSale
	case IsNewRelease(shoe.ReleaseDate, now):
		return VariantNewRelease
	default:
		return VariantDefault
	}
}

// ParseVariant разбирает вариант из строки запроса. Пустая строка — "без фильтра".
func ParseVariant(s string) (Variant, bool, error) {
	switch v := Variant(s); v {
	case "":
		return "", false, nil
	case VariantOnSale, VariantNewRelease, VariantDefault:
		return v, true, nil
	default:
		return "", false, e.ErrInvalidVariant
	}
}

// Tag возвращает текст бейджа на изображении. Для default бейджа нет.
func (v Variant) Tag() string {
	switch v {
	case VariantOnSale:
		return "Sale"
	case VariantNewRelease:
		return "Just Released!"
	default:
		return ""
	}
}
