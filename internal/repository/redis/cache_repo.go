package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// keyPrefix включает версию схемы: при изменении ShoeRedisModel старые записи просто перестают читаться.
const keyPrefix = "shoe:v1:"

type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetShoe возвращает товар из кэша. Промах и повреждённая запись — (nil, nil).
func (c *CacheRepo) GetShoe(ctx context.Context, slug string) (*domain.Shoe, error) {
	key := shoeKey(slug)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := unmarshalShoe(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.evict(key)
		return nil, nil
	}

	if model.Slug != slug {
		c.logger.Warnf("Cache slug mismatch: key_slug: %s, model_slug: %s", slug, model.Slug)
		c.evict(key)
		return nil, nil
	}

	return converter.ToEntity(model), nil
}

// SetShoe кэширует товар с TTL из конфигурации.
func (c *CacheRepo) SetShoe(ctx context.Context, shoe *domain.Shoe) error {
	data, err := json.Marshal(converter.ToRedisModel(shoe))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, shoeKey(shoe.Slug), data, c.cfg.ShoeTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteShoe удаляет товар из кэша
func (c *CacheRepo) DeleteShoe(ctx context.Context, slug string) error {
	if err := c.client.Client.Del(ctx, shoeKey(slug)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) evict(key string) {
	if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
		c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func unmarshalShoe(data []byte) (*converter.ShoeRedisModel, error) {
	var model converter.ShoeRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	if model.Slug == "" {
		return nil, fmt.Errorf("cached shoe has empty slug")
	}

	return &model, nil
}

// shoeKey возвращает Redis-ключ для одного товара
func shoeKey(slug string) string {
	return keyPrefix + slug
}
