package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore magasin clé-valeur en mémoire pour les tests, avec trace du
// dernier TTL passé à Set par clé
type memStore struct {
	data    map[string]string
	lastTTL map[string]time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		data:    make(map[string]string),
		lastTTL: make(map[string]time.Duration),
	}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.data[key] = value
	s.lastTTL[key] = ttl
	return nil
}

func TestViewsGetAbsent(t *testing.T) {
	svc := NewViewService(newMemStore())

	n, err := svc.Get(context.Background(), "movie", 550)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestViewsPremierIncrement(t *testing.T) {
	store := newMemStore()
	svc := NewViewService(store)
	ctx := context.Background()

	n, err := svc.Increment(ctx, "movie", 550)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Le premier incrément pose l'expiration d'un an
	assert.Equal(t, viewTTL, store.lastTTL["views:movie:550"])
}

func TestViewsIncrementsSuivantsConserventLeTTL(t *testing.T) {
	store := newMemStore()
	svc := NewViewService(store)
	ctx := context.Background()

	_, err := svc.Increment(ctx, "series", 1399)
	require.NoError(t, err)

	n, err := svc.Increment(ctx, "series", 1399)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, KeepTTL, store.lastTTL["views:series:1399"])

	n, err = svc.Get(ctx, "series", 1399)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestViewsClesIndependantes(t *testing.T) {
	store := newMemStore()
	svc := NewViewService(store)
	ctx := context.Background()

	// Même identifiant, types différents : deux compteurs distincts
	_, err := svc.Increment(ctx, "movie", 100)
	require.NoError(t, err)
	_, err = svc.Increment(ctx, "series", 100)
	require.NoError(t, err)

	m, _ := svc.Get(ctx, "movie", 100)
	s, _ := svc.Get(ctx, "series", 100)
	assert.Equal(t, int64(1), m)
	assert.Equal(t, int64(1), s)
}

func TestViewsValeurCorrompue(t *testing.T) {
	store := newMemStore()
	store.data["views:movie:1"] = "pas-un-nombre"
	svc := NewViewService(store)

	_, err := svc.Get(context.Background(), "movie", 1)
	assert.Error(t, err)
}
