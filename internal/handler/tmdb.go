package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/ztvplus/internal/model"
	"github.com/user/ztvplus/internal/service"
	"github.com/user/ztvplus/internal/utils"
)

// Trending GET /api/tmdb/trending?type=all|movie|tv&page=
func (h *Handler) Trending(c *gin.Context) {
	mediaType := c.DefaultQuery("type", "all")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	result, err := h.TMDB.Trending(c.Request.Context(), mediaType, page)
	if err != nil {
		utils.InternalServerError(c, "appel TMDB échoué : "+err.Error())
		return
	}

	h.respondFiltered(c, result, mediaType)
}

// SearchTMDB GET /api/tmdb/search?q=&page=
func (h *Handler) SearchTMDB(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequest(c, "paramètre q manquant")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	result, err := h.TMDB.Search(c.Request.Context(), query, page)
	if err != nil {
		utils.InternalServerError(c, "appel TMDB échoué : "+err.Error())
		return
	}

	// La recherche multi porte le media_type sur chaque résultat
	h.respondFiltered(c, result, "")
}

// MovieDetails GET /api/tmdb/movie/:id
func (h *Handler) MovieDetails(c *gin.Context) {
	h.details(c, model.TMDBMovie)
}

// TVDetails GET /api/tmdb/tv/:id
func (h *Handler) TVDetails(c *gin.Context) {
	h.details(c, model.TMDBTV)
}

func (h *Handler) details(c *gin.Context, mediaType string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "identifiant invalide")
		return
	}

	// Un contenu banni n'est jamais exposé, même en détail
	banned, err := h.Bans.IsBanned(id, mediaType)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	if banned {
		utils.NotFound(c, "contenu indisponible")
		return
	}

	result, err := h.TMDB.Details(c.Request.Context(), mediaType, id)
	if err != nil {
		utils.InternalServerError(c, "appel TMDB échoué : "+err.Error())
		return
	}

	c.JSON(200, result)
}

// respondFiltered retire les contenus bannis d'une page de résultats.
// fallbackType sert quand TMDB n'annote pas chaque résultat d'un
// media_type (listes trending typées).
func (h *Handler) respondFiltered(c *gin.Context, result *service.TMDBListResponse, fallbackType string) {
	filtered := make([]map[string]interface{}, 0, len(result.Results))
	for _, item := range result.Results {
		mediaType := fallbackType
		if mt, ok := item["media_type"].(string); ok {
			mediaType = mt
		}
		if mediaType != model.TMDBMovie && mediaType != model.TMDBTV {
			// personnes et autres types : pas de notion de bannissement
			filtered = append(filtered, item)
			continue
		}

		id, ok := item["id"].(float64)
		if !ok {
			continue
		}
		banned, err := h.Bans.IsBanned(int(id), mediaType)
		if err != nil {
			utils.InternalServerError(c, err.Error())
			return
		}
		if !banned {
			filtered = append(filtered, item)
		}
	}

	c.JSON(200, gin.H{
		"page":          result.Page,
		"results":       filtered,
		"total_pages":   result.TotalPages,
		"total_results": result.TotalResults,
	})
}
