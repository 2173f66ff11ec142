package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/ztvplus/internal/config"
	"github.com/user/ztvplus/internal/middleware"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret  = "secret-de-test"
	testAdminID = "111"
	testAdminIP = "10.0.0.1"
)

// newTestServer handler complet sur SQLite en mémoire, avec la même
// chaîne de middlewares admin que le routeur de production
func newTestServer(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	cfg := &config.Config{
		AppSecret:       testSecret,
		SiteUrl:         "https://ztvplus.example.com",
		JWTExpiry:       time.Hour,
		AdminDiscordIDs: []string{testAdminID},
		AdminIPs:        []string{testAdminIP},
	}

	h := NewHandler(repository.NewRepositories(db), cfg, nil)

	r := gin.New()
	r.GET("/api/series/:id", h.GetSeriesVideos)
	r.GET("/api/videos", h.GetMovieVideos)

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuth(cfg.AppSecret))
	admin.Use(middleware.RequireAdmin(cfg))
	{
		admin.PUT("/series/:id", h.AdminReplaceSeries)
		admin.DELETE("/series/:id", h.AdminDeleteSeries)
		admin.PUT("/movies/:id", h.AdminReplaceMovie)
		admin.GET("/banned", h.AdminListBanned)
		admin.POST("/banned", h.AdminCreateBan)
		admin.DELETE("/banned", h.AdminRemoveBan)
	}
	return r, h
}

func adminRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateToken(testAdminID, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	req.Header.Set("x-forwarded-for", testAdminIP)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

const validSeriesBody = `{"season":{"1":{"episodes":{"1":{"videos":[
	{"name":"Serveur A","url":"https://cdn.example.com/v.mp4","lang":"VF","quality":"1080p"}
]}}}}}`

func TestAdminReplaceSeriesPuisLecture(t *testing.T) {
	r, _ := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/series/1399", validSeriesBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/series/1399"`)

	// Lecture publique : l'arborescence écrite est renvoyée, avec les
	// défauts pub=0 play=1 appliqués
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/series/1399", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Serveur A"`)
	assert.Contains(t, w.Body.String(), `"pub":0`)
	assert.Contains(t, w.Body.String(), `"play":1`)
}

func TestAdminReplaceSeriesPayloadInvalideNeModifieRien(t *testing.T) {
	r, h := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/series/1399", validSeriesBody))
	require.Equal(t, http.StatusOK, w.Code)

	// url manquant sur la vidéo : rejet complet, le catalogue en place
	// reste intact
	bad := `{"season":{"1":{"episodes":{"1":{"videos":[{"name":"X","lang":"VF","quality":"720p"}]}}}}}`
	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/series/1399", bad))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := h.Repos.Video.CountByContent(1399, model.TypeSeries)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAdminRefuseSansAllowlist(t *testing.T) {
	r, h := newTestServer(t)

	token, err := middleware.GenerateToken(testAdminID, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	// Jeton admin valide mais IP hors liste : 401 et aucune écriture
	req := httptest.NewRequest(http.MethodPut, "/api/admin/series/1399", strings.NewReader(validSeriesBody))
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	req.Header.Set("x-forwarded-for", "192.168.1.50")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	count, err := h.Repos.Video.CountByContent(1399, model.TypeSeries)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAdminReplaceMovieStrict(t *testing.T) {
	r, _ := newTestServer(t)

	// pub/play absents : le chemin film refuse
	bad := `{"videos":[{"name":"A","url":"https://x/f.mp4","lang":"VF","quality":"1080p"}]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/movies/550", bad))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	good := `{"videos":[{"name":"A","url":"https://x/f.mp4","lang":"VF","quality":"1080p","pub":0,"play":1}]}`
	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/movies/550", good))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos?id=550", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"videos"`)
}

func TestGetMovieVideosSansSource(t *testing.T) {
	r, _ := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/videos?id=999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSeriesVideosSerieInconnue(t *testing.T) {
	r, _ := newTestServer(t)

	// Série sans lignes : arborescence vide, pas un 404
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/series/424242", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"season":{}}`, w.Body.String())
}

func TestBanMasqueLaLecture(t *testing.T) {
	r, _ := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/series/1399", validSeriesBody))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/api/admin/banned",
		`{"tmdb_id":1399,"content_type":"tv","reason":"DMCA"}`))
	require.Equal(t, http.StatusOK, w.Code)

	// Le contenu banni disparaît du catalogue public
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/series/1399", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Dé-bannissement : le catalogue redevient visible
	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodDelete, "/api/admin/banned?tmdb_id=1399&content_type=tv", ""))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/series/1399", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBanDoublonRefuse(t *testing.T) {
	r, _ := newTestServer(t)

	body := `{"tmdb_id":550,"content_type":"movie"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/api/admin/banned", body))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/api/admin/banned", body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBanVocabulaireTMDBRequis(t *testing.T) {
	r, _ := newTestServer(t)

	// "series" est le vocabulaire interne, la liste de bannissement
	// n'accepte que movie|tv
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPost, "/api/admin/banned",
		`{"tmdb_id":550,"content_type":"series"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteSeries(t *testing.T) {
	r, _ := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodPut, "/api/admin/series/1399", validSeriesBody))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, http.MethodDelete, "/api/admin/series/1399", ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":1`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/series/1399", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"season":{}}`, w.Body.String())
}
