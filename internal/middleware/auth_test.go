package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/ztvplus/internal/config"
)

const testSecret = "secret-de-test"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": GetUserID(c), "username": GetUsername(c)})
	})
	return r
}

func adminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(cfg), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestRequireAuthSansJeton(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthJetonInvalide(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "nimporte.quoi.vraiment"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMauvaisSecret(t *testing.T) {
	token, err := GenerateToken("123", "alice", "autre-secret", time.Hour)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthCookieValide(t *testing.T) {
	token, err := GenerateToken("123456789012345678", "alice", testSecret, time.Hour)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "123456789012345678")
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireAuthEnTeteBearer(t *testing.T) {
	token, err := GenerateToken("123", "alice", testSecret, time.Hour)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthJetonExpire(t *testing.T) {
	token, err := GenerateToken("123", "alice", testSecret, -time.Minute)
	require.NoError(t, err)

	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func adminConfig() *config.Config {
	return &config.Config{
		AdminDiscordIDs: []string{"111"},
		AdminIPs:        []string{"10.0.0.1"},
	}
}

func adminRequest(t *testing.T, userID, ip string) *http.Request {
	t.Helper()
	token, err := GenerateToken(userID, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	if ip != "" {
		req.Header.Set("x-forwarded-for", ip)
	}
	return req
}

func TestRequireAdminAccepte(t *testing.T) {
	r := adminRouter(adminConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "111", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminIdentifiantNonAutorise(t *testing.T) {
	r := adminRouter(adminConfig())
	w := httptest.NewRecorder()
	// Jeton valide mais identifiant hors liste : refus
	r.ServeHTTP(w, adminRequest(t, "222", "10.0.0.1"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminIPNonAutorisee(t *testing.T) {
	r := adminRouter(adminConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "111", "192.168.1.50"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminSansEnTeteIP(t *testing.T) {
	// Échec fermé : aucun en-tête d'origine, donc refus même pour un
	// identifiant autorisé
	r := adminRouter(adminConfig())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "111", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminListesVides(t *testing.T) {
	r := adminRouter(&config.Config{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "111", "10.0.0.1"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallerIPPrioriteForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("x-forwarded-for", "10.0.0.1, 172.16.0.9")
	c.Request.Header.Set("x-real-ip", "192.168.1.1")

	// Première entrée de x-forwarded-for, x-real-ip ignoré
	assert.Equal(t, "10.0.0.1", CallerIP(c))
}

func TestCallerIPRepliRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("x-real-ip", "192.168.1.1")

	assert.Equal(t, "192.168.1.1", CallerIP(c))
}
