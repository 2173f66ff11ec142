package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/utils"
	"golang.org/x/sync/singleflight"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// tmdbTimeout délai d'abandon des appels TMDB, sans retry
const tmdbTimeout = 10 * time.Second

// TMDBListResponse page de résultats TMDB (trending, search).
// Les résultats restent des objets bruts : l'API les relaie tels quels
// après filtrage des contenus bannis.
type TMDBListResponse struct {
	Page         int                      `json:"page"`
	Results      []map[string]interface{} `json:"results"`
	TotalPages   int                      `json:"total_pages"`
	TotalResults int                      `json:"total_results"`
}

// TMDBService client TMDB en lecture seule
type TMDBService struct {
	config *config.Config
	client *utils.APIClient
	group  singleflight.Group

	listCache   *utils.TTLCache[*TMDBListResponse]
	detailCache *utils.TTLCache[map[string]interface{}]
}

func NewTMDBService(cfg *config.Config) *TMDBService {
	return &TMDBService{
		config:      cfg,
		client:      utils.NewAPIClient(tmdbTimeout),
		listCache:   utils.NewTTLCache[*TMDBListResponse](500, 10*time.Minute),
		detailCache: utils.NewTTLCache[map[string]interface{}](1000, 30*time.Minute),
	}
}

func (s *TMDBService) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + s.config.TMDBToken,
	}
}

// Trending tendances du jour. mediaType : all|movie|tv.
func (s *TMDBService) Trending(ctx context.Context, mediaType string, page int) (*TMDBListResponse, error) {
	if mediaType != "all" && mediaType != "movie" && mediaType != "tv" {
		return nil, fmt.Errorf("type de média invalide : %q", mediaType)
	}
	endpoint := fmt.Sprintf("%s/trending/%s/day?language=fr-FR&page=%d", tmdbBaseURL, mediaType, page)
	return s.fetchList(ctx, endpoint)
}

// Search recherche multi (films + séries)
func (s *TMDBService) Search(ctx context.Context, query string, page int) (*TMDBListResponse, error) {
	endpoint := fmt.Sprintf("%s/search/multi?language=fr-FR&query=%s&page=%d",
		tmdbBaseURL, url.QueryEscape(query), page)
	return s.fetchList(ctx, endpoint)
}

// Details détails d'un film ou d'une série. mediaType en vocabulaire
// TMDB (movie|tv).
func (s *TMDBService) Details(ctx context.Context, mediaType string, id int) (map[string]interface{}, error) {
	if mediaType != "movie" && mediaType != "tv" {
		return nil, fmt.Errorf("type de média invalide : %q", mediaType)
	}
	endpoint := fmt.Sprintf("%s/%s/%d?language=fr-FR", tmdbBaseURL, mediaType, id)

	if cached, ok := s.detailCache.Get(endpoint); ok {
		return cached, nil
	}

	// singleflight évite les requêtes concurrentes identiques vers TMDB
	val, err, _ := s.group.Do(endpoint, func() (interface{}, error) {
		var result map[string]interface{}
		if err := s.client.GetJSON(ctx, endpoint, s.headers(), &result); err != nil {
			return nil, err
		}
		s.detailCache.Set(endpoint, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(map[string]interface{}), nil
}

func (s *TMDBService) fetchList(ctx context.Context, endpoint string) (*TMDBListResponse, error) {
	if cached, ok := s.listCache.Get(endpoint); ok {
		return cached, nil
	}

	val, err, _ := s.group.Do(endpoint, func() (interface{}, error) {
		var result TMDBListResponse
		if err := s.client.GetJSON(ctx, endpoint, s.headers(), &result); err != nil {
			return nil, err
		}
		s.listCache.Set(endpoint, &result)
		return &result, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*TMDBListResponse), nil
}
