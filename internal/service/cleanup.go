package service

import (
	"log"
	"time"

	"github.com/user/ztvplus/internal/repository"
)

// historyRetentionDays les positions de lecture inactives au-delà de
// cette durée sont purgées
const historyRetentionDays = 365

// CleanupService purge périodique des données périmées
type CleanupService struct {
	repos *repository.Repositories
}

func NewCleanupService(repos *repository.Repositories) *CleanupService {
	return &CleanupService{repos: repos}
}

// Start lance la purge quotidienne (une passe immédiate au démarrage)
func (s *CleanupService) Start() {
	ticker := time.NewTicker(24 * time.Hour)

	go s.runCleanup()

	go func() {
		for range ticker.C {
			s.runCleanup()
		}
	}()
}

func (s *CleanupService) runCleanup() {
	log.Println("[CleanupService] purge des données périmées...")

	affected, err := s.repos.History.DeleteOlderThan(historyRetentionDays)
	if err != nil {
		log.Printf("[CleanupService] purge de l'historique échouée : %v", err)
	} else if affected > 0 {
		log.Printf("[CleanupService] %d positions de lecture inactives purgées", affected)
	}
}
