package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Manager запускает функцию внутри транзакции. Вложенные вызовы переиспользуют внешнюю транзакцию.
type Manager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewManager создаёт менеджер транзакций поверх пула pgx.
func NewManager(pool *pgxpool.Pool) (*manager.Manager, error) {
	return manager.New(trmpgx.NewDefaultFactory(pool))
}

// Conn возвращает транзакцию из контекста, а если её нет — сам пул.
func Conn(ctx context.Context, pool *pgxpool.Pool) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, pool)
}
