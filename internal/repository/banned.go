package repository

import (
	"errors"
	"fmt"

	"github.com/user/ztvplus/internal/model"
	"gorm.io/gorm"
)

// ErrAlreadyBanned le couple (tmdb_id, content_type) est déjà banni
var ErrAlreadyBanned = errors.New("ce contenu est déjà banni")

type BannedRepository struct {
	db *gorm.DB
}

func NewBannedRepository(db *gorm.DB) *BannedRepository {
	return &BannedRepository{db: db}
}

// IsBanned vérifie l'appartenance à la liste de bannissement.
// contentType utilise le vocabulaire TMDB (movie|tv).
func (r *BannedRepository) IsBanned(tmdbID int, contentType string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BannedContent{}).
		Where("tmdb_id = ? AND content_type = ?", tmdbID, contentType).
		Count(&count).Error
	return count > 0, err
}

// Ban ajoute un bannissement. Pré-vérification applicative en plus de
// l'index unique, pour renvoyer une erreur parlante plutôt qu'une
// violation de contrainte.
func (r *BannedRepository) Ban(ban *model.BannedContent) error {
	if ban.ContentType != model.TMDBMovie && ban.ContentType != model.TMDBTV {
		return fmt.Errorf("content_type invalide : %q (attendu movie|tv)", ban.ContentType)
	}

	exists, err := r.IsBanned(ban.TmdbID, ban.ContentType)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyBanned
	}
	return r.db.Create(ban).Error
}

// Unban retire un bannissement ; idempotent, l'absence n'est pas une erreur
func (r *BannedRepository) Unban(tmdbID int, contentType string) error {
	return r.db.Where("tmdb_id = ? AND content_type = ?", tmdbID, contentType).
		Delete(&model.BannedContent{}).Error
}

// ListAll liste complète, bannissements les plus récents d'abord
func (r *BannedRepository) ListAll() ([]model.BannedContent, error) {
	var rows []model.BannedContent
	err := r.db.Order("created_at DESC").Find(&rows).Error
	return rows, err
}
