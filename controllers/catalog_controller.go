package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-api/catalog"
)

// ListProducts serves the static catalog the storefront renders.
func ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Products())
}
