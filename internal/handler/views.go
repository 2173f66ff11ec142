package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/utils"
)

// viewsIncrementReq corps de POST /api/views/increment
type viewsIncrementReq struct {
	ID   int    `json:"id" binding:"required"`
	Type string `json:"type" binding:"required,oneof=movie series"`
}

// IncrementViews POST /api/views/increment — +1 par lecture
func (h *Handler) IncrementViews(c *gin.Context) {
	var req viewsIncrementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "corps de requête invalide : id et type (movie|series) requis")
		return
	}

	views, err := h.Views.Increment(c.Request.Context(), req.Type, req.ID)
	if err != nil {
		utils.InternalServerError(c, "incrément du compteur échoué : "+err.Error())
		return
	}

	c.JSON(200, gin.H{"views": views})
}

// GetViews GET /api/views/get?id=&type= — lecture seule, 0 si absent
func (h *Handler) GetViews(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		utils.BadRequest(c, "id invalide")
		return
	}
	contentType := c.Query("type")
	if contentType != model.TypeMovie && contentType != model.TypeSeries {
		utils.BadRequest(c, "type invalide (attendu movie|series)")
		return
	}

	views, err := h.Views.Get(c.Request.Context(), contentType, id)
	if err != nil {
		utils.InternalServerError(c, "lecture du compteur échouée : "+err.Error())
		return
	}

	c.JSON(200, gin.H{"views": views})
}
