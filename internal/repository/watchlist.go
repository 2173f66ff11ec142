package repository

import (
	"github.com/user/ztvplus/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Upsert ajoute un contenu à la liste ; ré-ajouter un contenu déjà
// présent rafraîchit simplement le titre et l'affiche.
func (r *WatchlistRepository) Upsert(item *model.WatchlistItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "content_id"}, {Name: "content_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"title", "poster"}),
	}).Create(item).Error
}

// ListByUser liste de l'utilisateur, ajouts récents d'abord
func (r *WatchlistRepository) ListByUser(userID string) ([]model.WatchlistItem, error) {
	var items []model.WatchlistItem
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Delete retire un contenu de la liste
func (r *WatchlistRepository) Delete(userID string, contentID int, contentType string) error {
	return r.db.Where("user_id = ? AND content_id = ? AND content_type = ?",
		userID, contentID, contentType).
		Delete(&model.WatchlistItem{}).Error
}
