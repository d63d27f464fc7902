package shoecard

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const currencySymbol = "$"

var hundred = decimal.NewFromInt(100)

// FormatPrice форматирует сумму в долларах: "$1,234.50".
// Два знака после точки, округление половины от нуля. Отрицательная сумма — ошибка вызывающего,
// но выводится детерминированно как "-$x.yy".
func FormatPrice(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	rounded := amount.Abs().Round(2)
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Mul(hundred).IntPart()

	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol, humanize.BigComma(whole.BigInt()), cents)
}

// FormatCents форматирует сумму, заданную в центах.
func FormatCents(cents int64) string {
	return FormatPrice(decimal.New(cents, -2))
}
