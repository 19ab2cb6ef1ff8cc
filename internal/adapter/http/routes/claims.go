package routes

import (
	"warranty_intake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClaims = "/claims"
)

func addClaimRoutes(rg *gin.RouterGroup, claimHandler *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		// OPTIONS preflight is answered by the CORS middleware before routing.
		claims.POST("", claimHandler.SubmitClaim)
	}
}
