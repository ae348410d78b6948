package handlers

import (
	"net/http"

	response "kasra-bnpl/internal/adapter/http/dto/response"
	"kasra-bnpl/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static storefront catalog.

type CatalogHandler struct {
	products []entities.Product
}

func NewCatalogHandler(products []entities.Product) *CatalogHandler {
	return &CatalogHandler{products: products}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewProductsResponse(h.products))
}
