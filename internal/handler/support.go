package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/utils"
)

// supportReq corps de POST /api/support
type supportReq struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
}

// SubmitSupport POST /api/support — relaie le message vers le canal
// Discord de support
func (h *Handler) SubmitSupport(c *gin.Context) {
	var req supportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "sujet et message requis")
		return
	}

	userID := middleware.GetUserID(c)
	username := middleware.GetUsername(c)

	if err := h.Discord.SendSupportMessage(c.Request.Context(), userID, username, req.Subject, req.Message); err != nil {
		utils.InternalServerError(c, "envoi du message de support échoué : "+err.Error())
		return
	}

	c.JSON(200, gin.H{"success": true})
}
