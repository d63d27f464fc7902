package domain

import "time"

// Shoe описывает модель обуви в каталоге витрины
type Shoe struct {
	ID          int64
	Slug        string
	Name        string
	ImageSrc    string
	Price       int64  // Цена хранится в центах
	SalePrice   *int64 // nil — товар не участвует в распродаже
	ReleaseDate time.Time
	NumOfColors int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsArchived  bool
}

func NewShoe(slug, name, imageSrc string, price int64, salePrice *int64, releaseDate time.Time, numOfColors int) *Shoe {
	return &Shoe{
		Slug:        slug,
		Name:        name,
		ImageSrc:    imageSrc,
		Price:       price,
		SalePrice:   salePrice,
		ReleaseDate: releaseDate,
		NumOfColors: numOfColors,
	}
}

// OnSale сообщает, задана ли цена распродажи.
func (s *Shoe) OnSale() bool {
	return s.SalePrice != nil
}
