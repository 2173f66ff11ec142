package repository

import (
	"fmt"

	"github.com/user/ztvplus/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB initialise la connexion à la base de données
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("impossible de se connecter à la base : %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	// Réglage du pool de connexions
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Migrate crée/met à jour le schéma
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.VideoRecord{},
		&model.BannedContent{},
		&model.HistoryEntry{},
		&model.WatchlistItem{},
	)
}

// Repositories collection des dépôts
type Repositories struct {
	DB        *gorm.DB
	Video     *VideoRepository
	Banned    *BannedRepository
	History   *HistoryRepository
	Watchlist *WatchlistRepository
}

// NewRepositories crée la collection des dépôts
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:        db,
		Video:     NewVideoRepository(db),
		Banned:    NewBannedRepository(db),
		History:   NewHistoryRepository(db),
		Watchlist: NewWatchlistRepository(db),
	}
}
