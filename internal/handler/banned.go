package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/repository"
	"github.com/user/ztvplus/internal/utils"
)

// tmdbtype : validation de binding pour le vocabulaire TMDB (movie|tv)
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("tmdbtype", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == model.TMDBMovie || s == model.TMDBTV
		})
	}
}

// AdminListBanned GET /api/admin/banned
func (h *Handler) AdminListBanned(c *gin.Context) {
	rows, err := h.Bans.ListAll()
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	c.JSON(200, gin.H{"banned": rows})
}

// banCreateReq corps de POST /api/admin/banned
type banCreateReq struct {
	TmdbID      int    `json:"tmdb_id" binding:"required"`
	ContentType string `json:"content_type" binding:"required,tmdbtype"`
	Reason      string `json:"reason"`
}

// AdminCreateBan POST /api/admin/banned — échoue si le couple est déjà banni
func (h *Handler) AdminCreateBan(c *gin.Context) {
	var req banCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide : tmdb_id et content_type (movie|tv) requis")
		return
	}

	ban := &model.BannedContent{
		TmdbID:      req.TmdbID,
		ContentType: req.ContentType,
		Reason:      req.Reason,
		CreatedBy:   middleware.GetUserID(c),
	}

	if err := h.Bans.Ban(ban); err != nil {
		if errors.Is(err, repository.ErrAlreadyBanned) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalServerError(c, "création du bannissement échouée : "+err.Error())
		return
	}

	c.JSON(200, gin.H{"success": true, "banned": ban})
}

// AdminRemoveBan DELETE /api/admin/banned?tmdb_id=&content_type= — idempotent
func (h *Handler) AdminRemoveBan(c *gin.Context) {
	tmdbID, err := strconv.Atoi(c.Query("tmdb_id"))
	if err != nil {
		utils.BadRequest(c, "tmdb_id invalide")
		return
	}
	contentType := c.Query("content_type")
	if contentType != model.TMDBMovie && contentType != model.TMDBTV {
		utils.BadRequest(c, "content_type invalide (attendu movie|tv)")
		return
	}

	if err := h.Bans.Unban(tmdbID, contentType); err != nil {
		utils.InternalServerError(c, "suppression du bannissement échouée")
		return
	}

	c.JSON(200, gin.H{"success": true})
}
