package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campusworks/qpr-api/internal/middleware"
	"github.com/campusworks/qpr-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func actorFromContext(c *gin.Context) *models.Actor {
	claims := claimsFromContext(c)
	if claims == nil {
		return nil
	}
	return claims.Actor()
}
