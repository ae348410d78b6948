package routes

import (
	"net/http"

	response "kasra-bnpl/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.NewHealthResponse())
	})
}
