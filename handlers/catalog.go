package handlers

import (
	"net/http"

	"gharseva/models"
	"gharseva/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves category pages and the category index.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

// GetCategoryPage handles GET /api/catalog/:category.
//
// The :category token is free-form. It may come from a URL slug, a search
// box, or an old bookmarked link; resolution to a known category happens
// inside the catalog service and always succeeds (unknown tokens land on
// the default "All Services" page).
func (h *CatalogHandler) GetCategoryPage(c *gin.Context) {
	token := c.Param("category")
	gender := c.Query("gender")
	if gender != "" && gender != models.GenderMen && gender != models.GenderWomen {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid gender",
			"message": "gender must be one of: men, women",
		})
		return
	}

	page, err := h.CatalogSvc.CategoryPage(c.Request.Context(), token, gender)
	if err != nil {
		h.Logger.Error("GetCategoryPage: failed to build category page",
			zap.String("token", token), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to load category",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListCategories handles GET /api/catalog.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.CatalogSvc.Categories()})
}
