package converter

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ShoeRedisModel — представление товара в кэше. Версия схемы входит в ключ.
type ShoeRedisModel struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	ImageSrc    string     `json:"image_src"`
	Price       int64      `json:"price"`
	SalePrice   *int64     `json:"sale_price,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	NumOfColors int        `json:"num_of_colors"`
}

func ToRedisModel(entity *domain.Shoe) *ShoeRedisModel {
	m := &ShoeRedisModel{
		ID:          entity.ID,
		Slug:        entity.Slug,
		Name:        entity.Name,
		ImageSrc:    entity.ImageSrc,
		Price:       entity.Price,
		SalePrice:   entity.SalePrice,
		NumOfColors: entity.NumOfColors,
	}
	if !entity.ReleaseDate.IsZero() {
		releaseDate := entity.ReleaseDate.UTC()
		m.ReleaseDate = &releaseDate
	}

	return m
}

func ToEntity(model *ShoeRedisModel) *domain.Shoe {
	s := &domain.Shoe{
		ID:          model.ID,
		Slug:        model.Slug,
		Name:        model.Name,
		ImageSrc:    model.ImageSrc,
		Price:       model.Price,
		SalePrice:   model.SalePrice,
		NumOfColors: model.NumOfColors,
	}
	if model.ReleaseDate != nil {
		s.ReleaseDate = *model.ReleaseDate
	}

	return s
}
