package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/utils"
)

// Claims contenu du jeton de session. UserID est l'identifiant Discord
// (snowflake) de l'utilisateur.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RequireAuth exige un jeton signé valide (cookie ou en-tête Bearer)
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, jwtSecret)
		if err != nil {
			utils.Unauthorized(c, "non connecté")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		// Renouvellement glissant : si plus de la moitié de la durée de
		// vie du jeton est consommée, on en réémet un
		if shouldRefresh(claims) {
			lifetime := claims.RegisteredClaims.ExpiresAt.Sub(claims.RegisteredClaims.IssuedAt.Time)
			newToken, err := GenerateToken(claims.UserID, claims.Username, jwtSecret, lifetime)
			if err == nil {
				c.SetCookie("token", newToken, int(lifetime.Seconds()), "/", "", false, true)
			}
		}

		c.Next()
	}
}

// RequireAdmin politique d'autorisation admin unifiée : l'identifiant
// Discord du jeton ET l'adresse IP de l'appelant doivent figurer dans
// leurs listes d'autorisation respectives. Appliqué après RequireAuth
// sur toutes les routes de mutation admin, sans exception. Échec fermé.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" || !contains(cfg.AdminDiscordIDs, userID) {
			utils.Unauthorized(c, "accès administrateur refusé")
			c.Abort()
			return
		}

		ip := CallerIP(c)
		if ip == "" || !contains(cfg.AdminIPs, ip) {
			utils.Unauthorized(c, "accès administrateur refusé")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CallerIP première entrée de x-forwarded-for, sinon x-real-ip.
// Vide si aucun des deux en-têtes n'est présent (rejet en aval).
func CallerIP(c *gin.Context) string {
	if fwd := c.GetHeader("x-forwarded-for"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return strings.TrimSpace(c.GetHeader("x-real-ip"))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// extractClaims extrait les Claims du cookie ou de l'en-tête Authorization
func extractClaims(c *gin.Context, jwtSecret string) (*Claims, error) {
	var tokenString string

	// Priorité au cookie
	if cookie, err := c.Cookie("token"); err == nil {
		tokenString = cookie
	} else {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GetUserID identifiant Discord de l'utilisateur connecté (vide sinon)
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(string)
	}
	return ""
}

// GetUsername nom d'utilisateur Discord (vide si non connecté)
func GetUsername(c *gin.Context) string {
	if username, exists := c.Get("username"); exists {
		return username.(string)
	}
	return ""
}

// GenerateToken génère un jeton de session signé
func GenerateToken(userID, username, jwtSecret string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// shouldRefresh vrai si plus de 50 % de la durée de vie est consommée
func shouldRefresh(claims *Claims) bool {
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return false
	}

	totalDuration := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	elapsedDuration := time.Since(claims.IssuedAt.Time)

	return elapsedDuration > totalDuration/2
}
