package utils

import (
	"github.com/gin-gonic/gin"
)

// Error renvoie une erreur JSON au contrat de l'API : { "error": message }
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest erreur 400
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "requête invalide"
	}
	Error(c, 400, message)
}

// Unauthorized erreur 401
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "non autorisé"
	}
	Error(c, 401, message)
}

// NotFound erreur 404
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "ressource introuvable"
	}
	Error(c, 404, message)
}

// InternalServerError erreur 500, le message amont est joint au corps
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "erreur interne du serveur"
	}
	Error(c, 500, message)
}
