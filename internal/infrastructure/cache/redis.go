package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain/entity"
	"storefront/pkg/logger"
)

const allProductsKey = "products:all"

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// InitRedis connects to redis and verifies the connection with a ping.
func InitRedis(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connection established at %s", addr)
	return rdb, nil
}

// ProductCache is a read cache over the product store. A nil ProductCache
// (or one built over a nil client) is a no-op, so callers never branch on
// whether caching is configured. Cache failures are logged and swallowed;
// the store stays the source of truth.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{rdb: rdb, ttl: ttl}
}

func (c *ProductCache) GetProduct(ctx context.Context, id string) (*entity.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}
	return &product, true
}

func (c *ProductCache) SetProduct(ctx context.Context, product *entity.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productKey(product.ID), data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache product %s: %v", product.ID, err)
	}
}

func (c *ProductCache) GetAll(ctx context.Context) ([]*entity.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, allProductsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var products []*entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetAll(ctx context.Context, products []*entity.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, allProductsKey, data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to cache product collection: %v", err)
	}
}

// Invalidate drops the record and the full-collection entry after a write.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, productKey(id), allProductsKey).Err(); err != nil {
		logger.Warn("Failed to invalidate product cache for %s: %v", id, err)
	}
}
