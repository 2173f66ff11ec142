package service

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// viewTTL expiration posée au premier incrément d'un compteur
const viewTTL = 365 * 24 * time.Hour

// KeepTTL passé à Set pour conserver l'expiration existante de la clé
// (même valeur que redis.KeepTTL)
const KeepTTL time.Duration = -1

// KVStore abstraction du magasin clé-valeur des compteurs de vues.
// En production : Redis ; dans les tests : une map en mémoire.
type KVStore interface {
	// Get renvoie (valeur, présente, erreur)
	Get(ctx context.Context, key string) (string, bool, error)
	// Set écrit la valeur ; ttl = KeepTTL conserve l'expiration en place
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// ViewService compteur de vues par contenu, clé views:{type}:{id}
type ViewService struct {
	store KVStore
}

func NewViewService(store KVStore) *ViewService {
	return &ViewService{store: store}
}

func viewKey(contentType string, id int) string {
	return fmt.Sprintf("views:%s:%d", contentType, id)
}

// Get lecture seule, 0 si la clé n'existe pas
func (s *ViewService) Get(ctx context.Context, contentType string, id int) (int64, error) {
	raw, ok, err := s.store.Get(ctx, viewKey(contentType, id))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("valeur de compteur corrompue : %q", raw)
	}
	return n, nil
}

// Increment lit la valeur courante puis écrit valeur+1. L'expiration
// d'un an n'est posée que lorsque la valeur précédente vaut 0 (première
// vue) ; les incréments suivants conservent le TTL en place.
//
// Lecture-puis-écriture volontairement non atomique : deux appels
// simultanés sur la même clé peuvent perdre un incrément. Acceptable
// pour un compteur d'affichage.
func (s *ViewService) Increment(ctx context.Context, contentType string, id int) (int64, error) {
	key := viewKey(contentType, id)

	current, err := s.Get(ctx, contentType, id)
	if err != nil {
		return 0, err
	}

	next := current + 1
	ttl := KeepTTL
	if current == 0 {
		ttl = viewTTL
	}
	if err := s.store.Set(ctx, key, strconv.FormatInt(next, 10), ttl); err != nil {
		return 0, err
	}
	return next, nil
}
