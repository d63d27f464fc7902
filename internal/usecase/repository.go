package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type ShoeRepository interface {
	Upsert(ctx context.Context, shoe *domain.Shoe) (*UpsertShoeRes, error)
	List(ctx context.Context) ([]domain.Shoe, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Shoe, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// CacheRepository — кэш товаров по slug. Промах возвращает (nil, nil).
type CacheRepository interface {
	GetShoe(ctx context.Context, slug string) (*domain.Shoe, error)
	SetShoe(ctx context.Context, shoe *domain.Shoe) error
	DeleteShoe(ctx context.Context, slug string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
