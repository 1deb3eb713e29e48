package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves one budget list. Income and expense each get their own instance.
type categoryHandler struct {
	kind            domain.CategoryKind
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(kind domain.CategoryKind, cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{kind: kind, categoryService: cs}
}

// registerCategoryRoutes mounts /income and /expense.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	for _, kind := range []domain.CategoryKind{domain.IncomeCategory, domain.ExpenseCategory} {
		h := newCategoryHandler(kind, categoryService)

		group := rg.Group("/" + string(kind))
		{
			group.GET("", h.listCategories)
			group.POST("", h.createCategory)
			group.PUT("/:categoryID", h.updateCategory)
			group.DELETE("/:categoryID", h.deleteCategory)
		}
	}
}

// listCategories godoc
// @Summary List budget categories
// @Description Lists income or expense categories, newest first
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /income [get]
// @Router /expense [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("kind", string(h.kind)))

	categories, err := h.categoryService.ListCategories(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// createCategory godoc
// @Summary Create a budget category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /income [post]
// @Router /expense [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("kind", string(h.kind)))

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), h.kind, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a budget category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path int true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "New name and value"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to update category"
// @Router /income/{categoryID} [put]
// @Router /expense/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("kind", string(h.kind)))

	id, ok := parseIDParam(c, "categoryID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), h.kind, id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a budget category
// @Tags categories
// @Param categoryID path int true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to delete category"
// @Router /income/{categoryID} [delete]
// @Router /expense/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("kind", string(h.kind)))

	id, ok := parseIDParam(c, "categoryID")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), h.kind, id); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
