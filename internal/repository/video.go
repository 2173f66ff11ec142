package repository

import (
	"github.com/user/ztvplus/internal/model"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// ListSeries lignes d'une série, triées saison ASC, épisode ASC, qualité DESC.
// Le tri alimente directement l'ordre d'insertion dans l'arborescence.
func (r *VideoRepository) ListSeries(tmdbID int) ([]model.VideoRecord, error) {
	var rows []model.VideoRecord
	err := r.db.Where("tmdb_id = ? AND type = ?", tmdbID, model.TypeSeries).
		Order("season_number ASC, episode_number ASC, quality DESC").
		Find(&rows).Error
	return rows, err
}

// ListMovie sources d'un film, qualité décroissante
func (r *VideoRepository) ListMovie(tmdbID int) ([]model.VideoRecord, error) {
	var rows []model.VideoRecord
	err := r.db.Where("tmdb_id = ? AND type = ?", tmdbID, model.TypeMovie).
		Order("quality DESC").
		Find(&rows).Error
	return rows, err
}

// ReplaceSeries remplacement complet des lignes d'une série : suppression
// puis insertion dans une même transaction, pour fermer la fenêtre où un
// crash laisserait la série vide.
func (r *VideoRepository) ReplaceSeries(tmdbID int, rows []model.VideoRecord) error {
	return r.replace(tmdbID, model.TypeSeries, rows)
}

// ReplaceMovie remplacement complet des sources d'un film
func (r *VideoRepository) ReplaceMovie(tmdbID int, rows []model.VideoRecord) error {
	return r.replace(tmdbID, model.TypeMovie, rows)
}

func (r *VideoRepository) replace(tmdbID int, contentType string, rows []model.VideoRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tmdb_id = ? AND type = ?", tmdbID, contentType).
			Delete(&model.VideoRecord{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// DeleteByID supprime une source individuelle (films)
func (r *VideoRepository) DeleteByID(id uint) (int64, error) {
	result := r.db.Delete(&model.VideoRecord{}, id)
	return result.RowsAffected, result.Error
}

// DeleteSeries supprime toutes les lignes d'une série
func (r *VideoRepository) DeleteSeries(tmdbID int) (int64, error) {
	result := r.db.Where("tmdb_id = ? AND type = ?", tmdbID, model.TypeSeries).
		Delete(&model.VideoRecord{})
	return result.RowsAffected, result.Error
}

// CountByContent nombre de lignes pour un contenu
func (r *VideoRepository) CountByContent(tmdbID int, contentType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoRecord{}).
		Where("tmdb_id = ? AND type = ?", tmdbID, contentType).
		Count(&count).Error
	return count, err
}
