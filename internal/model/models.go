package model

import (
	"fmt"
	"time"
)

// Vocabulaire interne (catalogue vidéo et historique)
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// Vocabulaire TMDB (liste de bannissement et endpoints TMDB)
const (
	TMDBMovie = "movie"
	TMDBTV    = "tv"
)

// ToTMDB convertit le vocabulaire interne (movie|series) vers celui de TMDB (movie|tv).
// Les deux taxonomies coexistent dans la base ; toute traduction passe par ici.
func ToTMDB(contentType string) (string, error) {
	switch contentType {
	case TypeMovie:
		return TMDBMovie, nil
	case TypeSeries:
		return TMDBTV, nil
	}
	return "", fmt.Errorf("type de contenu inconnu : %q", contentType)
}

// FromTMDB convertit le vocabulaire TMDB (movie|tv) vers le vocabulaire interne (movie|series).
func FromTMDB(mediaType string) (string, error) {
	switch mediaType {
	case TMDBMovie:
		return TypeMovie, nil
	case TMDBTV:
		return TypeSeries, nil
	}
	return "", fmt.Errorf("type de média TMDB inconnu : %q", mediaType)
}

// VideoRecord une source de lecture pour un contenu (ligne de la table videos)
type VideoRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TmdbID        int       `json:"tmdb_id" gorm:"index:idx_videos_tmdb_type"`
	Type          string    `json:"type" gorm:"index:idx_videos_tmdb_type"`
	SeasonNumber  *int      `json:"season_number,omitempty"`
	EpisodeNumber *int      `json:"episode_number,omitempty"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Lang          string    `json:"lang"`
	Quality       string    `json:"quality"`
	Pub           int       `json:"pub"`  // 0 = sans pub, 1 = avec pub
	Play          int       `json:"play"` // 0|1, marqueur de disponibilité
	CreatedAt     time.Time `json:"created_at"`
}

func (VideoRecord) TableName() string { return "videos" }

// BannedContent un couple (tmdb_id, content_type) exclu du catalogue
type BannedContent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TmdbID      int       `json:"tmdb_id" gorm:"uniqueIndex:idx_banned_pair"`
	ContentType string    `json:"content_type" gorm:"uniqueIndex:idx_banned_pair"` // movie|tv (vocabulaire TMDB)
	Reason      string    `json:"reason"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (BannedContent) TableName() string { return "banned_content" }

// HistoryEntry position de lecture d'un utilisateur pour un contenu.
// Pour un film, Season et Episode valent 0 : l'index unique reste ainsi
// applicable (NULL ne se compare pas à NULL en SQL).
type HistoryEntry struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"uniqueIndex:idx_history_key"`
	ContentID       int       `json:"content_id" gorm:"uniqueIndex:idx_history_key"`
	ContentType     string    `json:"content_type" gorm:"uniqueIndex:idx_history_key"` // movie|series
	Season          int       `json:"season" gorm:"uniqueIndex:idx_history_key"`
	Episode         int       `json:"episode" gorm:"uniqueIndex:idx_history_key"`
	Title           string    `json:"title"`
	Poster          string    `json:"poster"`
	Backdrop        string    `json:"backdrop"`
	VideoURL        string    `json:"video_url"`
	VideoLang       string    `json:"video_lang"`
	VideoQuality    string    `json:"video_quality"`
	ProgressSeconds int       `json:"progress_seconds"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (HistoryEntry) TableName() string { return "history" }

// WatchlistItem contenu mis de côté par un utilisateur
type WatchlistItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_watchlist_key"`
	ContentID   int       `json:"content_id" gorm:"uniqueIndex:idx_watchlist_key"`
	ContentType string    `json:"content_type" gorm:"uniqueIndex:idx_watchlist_key"` // movie|series
	Title       string    `json:"title"`
	Poster      string    `json:"poster"`
	CreatedAt   time.Time `json:"created_at"`
}

func (WatchlistItem) TableName() string { return "watchlist" }

// DiscordUser profil minimal renvoyé par l'API Discord
type DiscordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
