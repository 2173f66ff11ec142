package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/utils"
)

// DiscordLogin GET /api/auth/discord — redirection vers l'écran
// d'autorisation Discord. Le nonce anti-CSRF est gardé en session.
func (h *Handler) DiscordLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		utils.InternalServerError(c, "génération du nonce échouée")
		return
	}
	state := hex.EncodeToString(buf)

	session := sessions.Default(c)
	session.Set("oauth_state", state)
	if err := session.Save(); err != nil {
		utils.InternalServerError(c, "écriture de session échouée")
		return
	}

	c.Redirect(http.StatusFound, h.Discord.AuthorizeURL(state))
}

// DiscordCallback GET /api/auth/discord/callback — échange le code,
// récupère le profil et pose le cookie de session signé (30 jours).
func (h *Handler) DiscordCallback(c *gin.Context) {
	session := sessions.Default(c)
	expected, _ := session.Get("oauth_state").(string)
	session.Delete("oauth_state")
	session.Save()

	if expected == "" || c.Query("state") != expected {
		utils.Unauthorized(c, "état OAuth invalide")
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "code d'autorisation manquant")
		return
	}

	ctx := c.Request.Context()
	accessToken, err := h.Discord.ExchangeCode(ctx, code)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	user, err := h.Discord.FetchUser(ctx, accessToken)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, "génération du jeton échouée")
		return
	}

	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, h.Config.SiteUrl)
}

// Logout POST /api/auth/logout — efface le cookie de session
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(200, gin.H{"success": true})
}

// Me GET /api/auth/me — profil de l'utilisateur connecté
func (h *Handler) Me(c *gin.Context) {
	c.JSON(200, gin.H{
		"user_id":  middleware.GetUserID(c),
		"username": middleware.GetUsername(c),
	})
}
