package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/shoecard"
)

type ShoeUC interface {
	RegisterShoe(ctx context.Context, req *RegisterShoeReq) (*OutboxEvent, error)
	ListShoeCards(ctx context.Context, req *ListShoesReq) ([]shoecard.Card, error)
	GetShoeCard(ctx context.Context, slug string) (*shoecard.Card, error)
	Header() *domain.Header
}
