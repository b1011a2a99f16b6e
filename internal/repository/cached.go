package repository

import (
	"context"
	"fmt"
	"servicehub/internal/models"
	"time"

	"github.com/patrickmn/go-cache"
)

const servicesKey = "services"

// Cached keeps successful reads of another Repository for a fixed TTL.
// Failures (ErrMissing included) are never stored, so a lookup that failed is
// always retried against the backend.
type Cached struct {
	next  Repository
	cache *cache.Cache
}

var _ Repository = (*Cached)(nil)

// NewCached decorates next with a read cache.
func NewCached(next Repository, ttl, cleanupInterval time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (c *Cached) Services(ctx context.Context) ([]models.Service, error) {
	if v, ok := c.cache.Get(servicesKey); ok {
		return cloneServices(v.([]models.Service)), nil
	}
	services, err := c.next.Services(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(servicesKey, cloneServices(services))
	return services, nil
}

func (c *Cached) Service(ctx context.Context, id uint32) (models.Service, error) {
	key := serviceKey(id)
	if v, ok := c.cache.Get(key); ok {
		return v.(models.Service), nil
	}
	svc, err := c.next.Service(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	c.cache.SetDefault(key, svc)
	return svc, nil
}

// Flush drops every cached item.
func (c *Cached) Flush() {
	c.cache.Flush()
}

func serviceKey(id uint32) string {
	return fmt.Sprintf("service:%d", id)
}
