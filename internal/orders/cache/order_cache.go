package cache

import (
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type Cache struct {
	cache *expirable.LRU[uuid.UUID, *models.Order]
	log   logger.Logger
}

func NewCache(
	cache *expirable.LRU[uuid.UUID, *models.Order],
	log logger.Logger,
) *Cache {
	return &Cache{
		cache: cache,
		log:   log,
	}
}

func (c *Cache) Add(key uuid.UUID, value *models.Order) (evicted bool) {
	return c.cache.Add(key, value)
}

func (c *Cache) Get(key uuid.UUID) (value *models.Order, ok bool) {
	return c.cache.Get(key)
}
