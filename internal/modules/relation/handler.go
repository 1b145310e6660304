package relation

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	recipes RecipeGate
}

func NewHandler(service *Service, recipes RecipeGate) *Handler {
	return &Handler{service: service, recipes: recipes}
}

// RegisterRoutes registers the favorite and shopping-cart toggles on the
// recipes group. Subscription routes live in the user module.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("/:id/favorite", h.add(domain.KindFavorite))
		recipes.DELETE("/:id/favorite", h.remove(domain.KindFavorite))
		recipes.POST("/:id/shopping_cart", h.add(domain.KindShoppingCart))
		recipes.DELETE("/:id/shopping_cart", h.remove(domain.KindShoppingCart))
	}
}

func (h *Handler) add(kind domain.RelationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
			return
		}

		if err := h.service.Add(c.Request.Context(), kind, userID, recipeID); err != nil {
			respondRelationError(c, err)
			return
		}

		recipe, err := h.recipes.GetByID(c.Request.Context(), recipeID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load recipe")
			return
		}
		response.Success(c, http.StatusCreated, ToShortRecipe(recipe))
	}
}

func (h *Handler) remove(kind domain.RelationKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe id")
			return
		}

		if err := h.service.Remove(c.Request.Context(), kind, userID, recipeID); err != nil {
			respondRelationError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func respondRelationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "Already added")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Relation not found")
	case errors.Is(err, ErrTargetNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Target not found")
	case errors.Is(err, ErrSelfSubscribe):
		response.Error(c, http.StatusBadRequest, "INVALID_TARGET", "Cannot subscribe to yourself")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Operation failed")
	}
}
