package service

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/repository"
)

// BanGate contrôle d'appartenance à la liste de bannissement, avec un
// petit cache mémoire devant la base. Les chemins de lecture du
// catalogue l'interrogent pour chaque contenu exposé.
type BanGate struct {
	repo  *repository.BannedRepository
	cache *gocache.Cache
}

func NewBanGate(repo *repository.BannedRepository) *BanGate {
	// 1 minute de validité suffit : un bannissement prend effet vite
	// sans marteler la base sur les carrousels
	return &BanGate{
		repo:  repo,
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

func banKey(tmdbID int, contentType string) string {
	return fmt.Sprintf("%d:%s", tmdbID, contentType)
}

// IsBanned contentType en vocabulaire TMDB (movie|tv)
func (g *BanGate) IsBanned(tmdbID int, contentType string) (bool, error) {
	key := banKey(tmdbID, contentType)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(bool), nil
	}

	banned, err := g.repo.IsBanned(tmdbID, contentType)
	if err != nil {
		return false, err
	}
	g.cache.Set(key, banned, gocache.DefaultExpiration)
	return banned, nil
}

// Ban ajoute un bannissement et invalide le cache correspondant
func (g *BanGate) Ban(ban *model.BannedContent) error {
	if err := g.repo.Ban(ban); err != nil {
		return err
	}
	g.cache.Delete(banKey(ban.TmdbID, ban.ContentType))
	return nil
}

// Unban retire un bannissement et invalide le cache correspondant
func (g *BanGate) Unban(tmdbID int, contentType string) error {
	if err := g.repo.Unban(tmdbID, contentType); err != nil {
		return err
	}
	g.cache.Delete(banKey(tmdbID, contentType))
	return nil
}

// ListAll délègue au dépôt
func (g *BanGate) ListAll() ([]model.BannedContent, error) {
	return g.repo.ListAll()
}
