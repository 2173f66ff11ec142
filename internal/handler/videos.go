package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/catalog"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/utils"
)

// GetSeriesVideos GET /api/series/:id — arborescence saison → épisode → sources
func (h *Handler) GetSeriesVideos(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	// La liste de bannissement est en vocabulaire TMDB : série → tv
	banned, err := h.Bans.IsBanned(tmdbID, model.TMDBTV)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	if banned {
		utils.NotFound(c, "contenu indisponible")
		return
	}

	rows, err := h.Repos.Video.ListSeries(tmdbID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	c.JSON(200, gin.H{"season": catalog.Nest(rows)})
}

// GetMovieVideos GET /api/videos?id= — sources d'un film, 404 si aucune
func (h *Handler) GetMovieVideos(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	banned, err := h.Bans.IsBanned(tmdbID, model.TMDBMovie)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	if banned {
		utils.NotFound(c, "contenu indisponible")
		return
	}

	rows, err := h.Repos.Video.ListMovie(tmdbID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	if len(rows) == 0 {
		utils.NotFound(c, "aucune vidéo pour ce film")
		return
	}

	videos := make([]model.VideoServer, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, model.VideoServer{
			Name:    row.Name,
			URL:     row.URL,
			Lang:    row.Lang,
			Quality: row.Quality,
			Pub:     row.Pub,
			Play:    row.Play,
		})
	}

	c.JSON(200, gin.H{"videos": videos})
}

// seriesUpdateReq corps de PUT /api/admin/series/:id
type seriesUpdateReq struct {
	Season catalog.SeasonTree `json:"season" binding:"required"`
}

// AdminReplaceSeries PUT /api/admin/series/:id — remplacement complet de
// l'arborescence d'une série. Validation intégrale avant toute écriture.
func (h *Handler) AdminReplaceSeries(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	var req seriesUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide : objet season attendu")
		return
	}

	rows, err := catalog.Flatten(tmdbID, req.Season)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.Repos.Video.ReplaceSeries(tmdbID, rows); err != nil {
		utils.InternalServerError(c, "écriture du catalogue échouée : "+err.Error())
		return
	}

	pathname := fmt.Sprintf("/api/series/%d", tmdbID)
	c.JSON(200, gin.H{
		"success":  true,
		"pathname": pathname,
		"url":      h.Config.SiteUrl + pathname,
	})
}

// movieUpdateReq corps de PUT /api/admin/movies/:id
type movieUpdateReq struct {
	Videos []catalog.VideoInput `json:"videos" binding:"required"`
}

// AdminReplaceMovie PUT /api/admin/movies/:id — remplacement complet des
// sources d'un film. Chemin strict : aucune coercition de pub/play.
func (h *Handler) AdminReplaceMovie(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	var req movieUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide : tableau videos attendu")
		return
	}

	rows, err := catalog.FlattenMovie(tmdbID, req.Videos)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.Repos.Video.ReplaceMovie(tmdbID, rows); err != nil {
		utils.InternalServerError(c, "écriture du catalogue échouée : "+err.Error())
		return
	}

	pathname := fmt.Sprintf("/api/videos?id=%d", tmdbID)
	c.JSON(200, gin.H{
		"success":  true,
		"pathname": pathname,
		"url":      h.Config.SiteUrl + pathname,
	})
}

// AdminDeleteVideo DELETE /api/admin/videos/:id — suppression d'une source
func (h *Handler) AdminDeleteVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	affected, err := h.Repos.Video.DeleteByID(uint(id))
	if err != nil {
		utils.InternalServerError(c, "suppression échouée")
		return
	}
	if affected == 0 {
		utils.NotFound(c, "vidéo introuvable")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// AdminDeleteSeries DELETE /api/admin/series/:id — suppression en masse
func (h *Handler) AdminDeleteSeries(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	affected, err := h.Repos.Video.DeleteSeries(tmdbID)
	if err != nil {
		utils.InternalServerError(c, "suppression échouée")
		return
	}

	c.JSON(200, gin.H{"success": true, "deleted": affected})
}
