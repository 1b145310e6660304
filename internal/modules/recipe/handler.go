package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterReadRoutes registers the anonymous-friendly read side. The optional
// auth middleware sets user_id when a valid token is present, so per-user
// flags and flag filters work for authenticated readers too.
func (h *Handler) RegisterReadRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
	}
}

// RegisterWriteRoutes registers the authoring endpoints (authenticated).
func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.PUT("/:id", h.Update)
		recipes.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	viewerID := c.GetInt64("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := repository.RecipeFilter{
		TagSlugs: c.QueryArray("tags"),
		ViewerID: viewerID,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseInt(author, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid author id")
			return
		}
		filter.AuthorID = id
	}
	filter.Favorited = isFlagSet(c.Query("is_favorited"))
	filter.InCart = isFlagSet(c.Query("is_in_shopping_cart"))

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list recipes")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	viewerID := c.GetInt64("user_id")
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
		return
	}

	recipe, err := h.service.Get(c.Request.Context(), viewerID, recipeID)
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipe)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe payload", errs)
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, recipe)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid recipe payload", errs)
		return
	}

	recipe, err := h.service.Update(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		respondRecipeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipe)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, recipeID); err != nil {
		respondRecipeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recipe not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the author can modify this recipe")
	case IsValidationError(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Operation failed")
	}
}

func isFlagSet(v string) bool {
	return v == "1" || v == "true"
}
