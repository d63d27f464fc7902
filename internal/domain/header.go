package domain

// NavLink — ссылка основной навигации.
type NavLink struct {
	Label  string
	Href   string
	Accent bool // выделяется акцентным цветом
}

// Header — шапка сайта: промо-строка и основная навигация.
// Визуально это две полосы, семантически — один header.
type Header struct {
	Promo string
	Links []NavLink
}

// NewHeader собирает шапку с фиксированным набором разделов. Первая ссылка (распродажа) акцентная.
func NewHeader(promo string) *Header {
	return &Header{
		Promo: promo,
		Links: []NavLink{
			{Label: "Sale", Href: "/sale", Accent: true},
			{Label: "New Releases", Href: "/new"},
			{Label: "Men", Href: "/men"},
			{Label: "Women", Href: "/women"},
			{Label: "Kids", Href: "/kids"},
			{Label: "Collections", Href: "/collections"},
		},
	}
}
