package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/handler"
	"github.com/user/ztvplus/internal/middleware"
)

// RegisterRoutes enregistre toutes les routes
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// Sonde de vie
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ==================== Catalogue public ====================
		api.GET("/series/:id", h.GetSeriesVideos)
		api.GET("/videos", h.GetMovieVideos)

		// ==================== Relais TMDB ====================
		tmdb := api.Group("/tmdb")
		{
			tmdb.GET("/trending", h.Trending)
			tmdb.GET("/search", h.SearchTMDB)
			tmdb.GET("/movie/:id", h.MovieDetails)
			tmdb.GET("/tv/:id", h.TVDetails)
		}

		// ==================== Compteurs de vues ====================
		views := api.Group("/views")
		{
			views.POST("/increment", h.IncrementViews)
			views.GET("/get", h.GetViews)
		}

		// ==================== Authentification Discord ====================
		auth := api.Group("/auth")
		{
			auth.GET("/discord", h.DiscordLogin)
			auth.GET("/discord/callback", h.DiscordCallback)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
		}

		// ==================== Espace utilisateur (connexion requise) ====================
		user := api.Group("")
		user.Use(middleware.RequireAuth(h.Config.AppSecret))
		{
			user.POST("/history", h.UpsertHistory)
			user.GET("/history", h.ListHistory)
			user.DELETE("/history", h.DeleteHistory)

			user.POST("/watchlist", h.AddToWatchlist)
			user.GET("/watchlist", h.ListWatchlist)
			user.DELETE("/watchlist", h.RemoveFromWatchlist)

			user.POST("/support", h.SubmitSupport)
		}

		// ==================== Administration ====================
		// Politique unique : jeton valide + identifiant Discord autorisé
		// + IP autorisée, sur toutes les routes admin sans exception.
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(h.Config.AppSecret))
		admin.Use(middleware.RequireAdmin(h.Config))
		{
			admin.PUT("/series/:id", h.AdminReplaceSeries)
			admin.DELETE("/series/:id", h.AdminDeleteSeries)
			admin.PUT("/movies/:id", h.AdminReplaceMovie)
			admin.DELETE("/videos/:id", h.AdminDeleteVideo)

			admin.GET("/banned", h.AdminListBanned)
			admin.POST("/banned", h.AdminCreateBan)
			admin.DELETE("/banned", h.AdminRemoveBan)
		}
	}
}
