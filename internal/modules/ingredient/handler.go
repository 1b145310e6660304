package ingredient

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the read-only ingredient catalog. The name query parameter
// narrows by case-insensitive prefix, matching the autocomplete on the
// authoring form.
type Handler struct {
	repo *repository.IngredientRepository
}

func NewHandler(repo *repository.IngredientRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ingredients := rg.Group("/ingredients")
	{
		ingredients.GET("", h.List)
		ingredients.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list ingredients")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient id")
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ingredient not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get ingredient")
		return
	}
	response.Success(c, http.StatusOK, item)
}
