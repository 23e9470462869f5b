package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weatherdash/models"
)

// Store holds forecast responses by rounded-coordinate key, bounded by size
// and optionally by age. A zero ttl keeps entries until they are evicted by size.
type Store struct {
	lru *expirable.LRU[string, *models.ForecastResponse]
}

// NewStore creates a store holding at most size entries.
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, *models.ForecastResponse](size, nil, ttl),
	}
}

func (s *Store) Get(key string) (*models.ForecastResponse, bool) {
	return s.lru.Get(key)
}

func (s *Store) Add(key string, resp *models.ForecastResponse) {
	s.lru.Add(key, resp)
}

func (s *Store) Len() int {
	return s.lru.Len()
}
