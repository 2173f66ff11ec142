package handler

import (
	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/repository"
	"github.com/user/ztvplus/internal/service"
)

// Handler traite les requêtes HTTP
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	TMDB    *service.TMDBService
	Discord *service.DiscordService
	Views   *service.ViewService
	Bans    *service.BanGate
}

// NewHandler crée le handler et ses services
func NewHandler(repos *repository.Repositories, cfg *config.Config, views *service.ViewService) *Handler {
	return &Handler{
		Repos:   repos,
		Config:  cfg,
		TMDB:    service.NewTMDBService(cfg),
		Discord: service.NewDiscordService(cfg),
		Views:   views,
		Bans:    service.NewBanGate(repos.Banned),
	}
}
