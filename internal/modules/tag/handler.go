package tag

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/pkg/response"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the read-only tag list. Tags are managed by admins through
// seeding; the API never mutates them.
type Handler struct {
	repo *repository.TagRepository
}

func NewHandler(repo *repository.TagRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	{
		tags.GET("", h.List)
		tags.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	tags, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list tags")
		return
	}
	response.Success(c, http.StatusOK, tags)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid tag id")
		return
	}

	tag, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tag not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get tag")
		return
	}
	response.Success(c, http.StatusOK, tag)
}
