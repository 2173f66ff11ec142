package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/utils"
)

// watchlistAddReq corps de POST /api/watchlist
type watchlistAddReq struct {
	ContentID   int    `json:"content_id" binding:"required"`
	ContentType string `json:"content_type" binding:"required,oneof=movie series"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
}

// AddToWatchlist POST /api/watchlist
func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req watchlistAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide")
		return
	}

	item := &model.WatchlistItem{
		UserID:      userID,
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Title:       req.Title,
		Poster:      req.Poster,
	}

	if err := h.Repos.Watchlist.Upsert(item); err != nil {
		utils.InternalServerError(c, "ajout à la liste échoué")
		return
	}

	c.JSON(200, gin.H{"success": true, "item": item})
}

// ListWatchlist GET /api/watchlist
func (h *Handler) ListWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.Repos.Watchlist.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "lecture de la liste échouée")
		return
	}

	c.JSON(200, gin.H{"watchlist": items})
}

// RemoveFromWatchlist DELETE /api/watchlist?content_id=&content_type=
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

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

	if err := h.Repos.Watchlist.Delete(userID, contentID, contentType); err != nil {
		utils.InternalServerError(c, "retrait de la liste échoué")
		return
	}

	c.JSON(200, gin.H{"success": true})
}
