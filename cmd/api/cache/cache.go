package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowers-service/cmd/api/flower"
	"github.com/flowers-service/cmd/api/metrics"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const flowerKeyPrefix = "flower:"
const defaultTTL = 5 * time.Minute

/* Store decorates a repository with a redis read-through cache for lookups by ID.
List queries always hit the inner repository, they are too variable to cache usefully. */
type Store struct {
	repo flower.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewStore(repo flower.Repository, rdb *redis.Client) *Store {
	return &Store{
		repo: repo,
		rdb:  rdb,
		ttl:  defaultTTL,
	}
}

/* Connects to redis through an address and returns a valid client. */
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("connecting to redis, pinging: %w", err)
	}

	return rdb, nil
}

func flowerKey(id uuid.UUID) string {
	return flowerKeyPrefix + id.String()
}

func (store *Store) CreateFlower(ctx context.Context, entry flower.Flower) (flower.Flower, error) {
	createdFlower, err := store.repo.CreateFlower(ctx, entry)
	if err != nil {
		return flower.Flower{}, err
	}

	store.set(ctx, createdFlower)
	return createdFlower, nil
}

func (store *Store) GetFlowerByID(ctx context.Context, id uuid.UUID) (flower.Flower, error) {
	if cached, ok := store.get(ctx, id); ok {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	metrics.CacheMisses.Inc()

	foundFlower, err := store.repo.GetFlowerByID(ctx, id)
	if err != nil {
		return flower.Flower{}, err
	}

	store.set(ctx, foundFlower)
	return foundFlower, nil
}

func (store *Store) UpdateFlower(ctx context.Context, entry flower.Flower) (flower.Flower, error) {
	updatedFlower, err := store.repo.UpdateFlower(ctx, entry)
	if err != nil {
		return flower.Flower{}, err
	}

	store.set(ctx, updatedFlower)
	return updatedFlower, nil
}

func (store *Store) DeleteFlower(ctx context.Context, id uuid.UUID) error {
	err := store.repo.DeleteFlower(ctx, id)
	if err != nil {
		return err
	}

	store.invalidate(ctx, id)
	return nil
}

func (store *Store) ListFlowers(ctx context.Context, search, color string, page, pageSize int) ([]flower.Flower, error) {
	return store.repo.ListFlowers(ctx, search, color, page, pageSize)
}

func (store *Store) ListFlowersTotals(ctx context.Context, search, color string) (int, error) {
	return store.repo.ListFlowersTotals(ctx, search, color)
}

// A missing or unreachable redis never fails the request,
// the repository stays the source of truth.
func (store *Store) get(ctx context.Context, id uuid.UUID) (flower.Flower, bool) {
	if store.rdb == nil {
		return flower.Flower{}, false
	}

	val, err := store.rdb.Get(ctx, flowerKey(id)).Result()
	if err != nil {
		return flower.Flower{}, false
	}

	var f flower.Flower
	if err := json.Unmarshal([]byte(val), &f); err != nil {
		return flower.Flower{}, false
	}

	return f, true
}

func (store *Store) set(ctx context.Context, f flower.Flower) {
	if store.rdb == nil {
		return
	}

	data, err := json.Marshal(f)
	if err != nil {
		return
	}

	store.rdb.Set(ctx, flowerKey(f.ID), data, store.ttl)
}

func (store *Store) invalidate(ctx context.Context, id uuid.UUID) {
	if store.rdb == nil {
		return
	}

	store.rdb.Del(ctx, flowerKey(id))
}
