package repository

import (
	"time"

	"github.com/user/ztvplus/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Upsert met à jour ou insère une position de lecture. La clé d'unicité
// est (user_id, content_id, content_type, season, episode) : un second
// rapport sur la même clé écrase la progression au lieu de dupliquer.
func (r *HistoryRepository) Upsert(h *model.HistoryEntry) error {
	h.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "content_id"}, {Name: "content_type"},
			{Name: "season"}, {Name: "episode"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "poster", "backdrop",
			"video_url", "video_lang", "video_quality",
			"progress_seconds", "duration_seconds", "updated_at",
		}),
	}).Create(h).Error
}

// ListByUser historique d'un utilisateur, le plus récent d'abord
func (r *HistoryRepository) ListByUser(userID string, limit, offset int) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// Delete supprime une entrée précise de l'utilisateur
func (r *HistoryRepository) Delete(userID string, contentID int, contentType string, season, episode int) error {
	return r.db.Where(
		"user_id = ? AND content_id = ? AND content_type = ? AND season = ? AND episode = ?",
		userID, contentID, contentType, season, episode,
	).Delete(&model.HistoryEntry{}).Error
}

// DeleteAll vide l'historique de l'utilisateur
func (r *HistoryRepository) DeleteAll(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.HistoryEntry{}).Error
}

// DeleteOlderThan purge les entrées non mises à jour depuis N jours
func (r *HistoryRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := r.db.Where("updated_at < ?", cutoff).Delete(&model.HistoryEntry{})
	return result.RowsAffected, result.Error
}

// CountByUser nombre d'entrées de l'utilisateur
func (r *HistoryRepository) CountByUser(userID string) (int, error) {
	var count int64
	err := r.db.Model(&model.HistoryEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}
