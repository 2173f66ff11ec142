package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/utils"
)

// historyUpsertReq corps de POST /api/history. Season/Episode restent à 0
// pour un film.
type historyUpsertReq struct {
	ContentID       int    `json:"content_id" binding:"required"`
	ContentType     string `json:"content_type" binding:"required,oneof=movie series"`
	Season          int    `json:"season" binding:"min=0"`
	Episode         int    `json:"episode" binding:"min=0"`
	Title           string `json:"title"`
	Poster          string `json:"poster"`
	Backdrop        string `json:"backdrop"`
	VideoURL        string `json:"video_url"`
	VideoLang       string `json:"video_lang"`
	VideoQuality    string `json:"video_quality"`
	ProgressSeconds int    `json:"progress_seconds" binding:"min=0"`
	DurationSeconds int    `json:"duration_seconds" binding:"min=0"`
}

// UpsertHistory POST /api/history — rapport de progression de lecture.
// Une seconde écriture sur la même clé met à jour la ligne existante.
func (h *Handler) UpsertHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req historyUpsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide")
		return
	}

	entry := &model.HistoryEntry{
		UserID:          userID,
		ContentID:       req.ContentID,
		ContentType:     req.ContentType,
		Season:          req.Season,
		Episode:         req.Episode,
		Title:           req.Title,
		Poster:          req.Poster,
		Backdrop:        req.Backdrop,
		VideoURL:        req.VideoURL,
		VideoLang:       req.VideoLang,
		VideoQuality:    req.VideoQuality,
		ProgressSeconds: req.ProgressSeconds,
		DurationSeconds: req.DurationSeconds,
	}

	if err := h.Repos.History.Upsert(entry); err != nil {
		utils.InternalServerError(c, "enregistrement de la progression échoué")
		return
	}

	c.JSON(200, gin.H{"success": true, "entry": entry})
}

// ListHistory GET /api/history?limit=&offset=
func (h *Handler) ListHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries, err := h.Repos.History.ListByUser(userID, limit, offset)
	if err != nil {
		utils.InternalServerError(c, "lecture de l'historique échouée")
		return
	}

	c.JSON(200, gin.H{"history": entries})
}

// DeleteHistory DELETE /api/history — une entrée précise, ou tout
// l'historique avec all=1. Seul le propriétaire peut supprimer.
func (h *Handler) DeleteHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if c.Query("all") == "1" {
		if err := h.Repos.History.DeleteAll(userID); err != nil {
			utils.InternalServerError(c, "suppression de l'historique échouée")
			return
		}
		c.JSON(200, gin.H{"success": true})
		return
	}

	contentID, err := strconv.Atoi(c.Query("content_id"))
	if err != nil {
		utils.BadRequest(c, "content_id invalide")
		return
	}
	contentType := c.Query("content_type")
	if contentType != model.TypeMovie && contentType != model.TypeSeries {
		utils.BadRequest(c, "content_type invalide (attendu movie|series)")
		return
	}
	season, _ := strconv.Atoi(c.DefaultQuery("season", "0"))
	episode, _ := strconv.Atoi(c.DefaultQuery("episode", "0"))

	if err := h.Repos.History.Delete(userID, contentID, contentType, season, episode); err != nil {
		utils.InternalServerError(c, "suppression de l'entrée échouée")
		return
	}

	c.JSON(200, gin.H{"success": true})
}
