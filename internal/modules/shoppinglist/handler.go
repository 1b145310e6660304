package shoppinglist

import (
	"net/http"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shopping_cart/download", h.Download)
}

// Download streams the shopping list as a text file attachment.
func (h *Handler) Download(c *gin.Context) {
	userID := c.GetInt64("user_id")

	list, err := h.service.Build(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to build shopping list")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=shopping-list.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(list))
}
