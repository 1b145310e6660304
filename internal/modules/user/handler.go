package user

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/modules/relation"
	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterReadRoutes registers anonymous-friendly user reads.
func (h *Handler) RegisterReadRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes registers endpoints requiring a valid token.
// Profile and subscription listing live outside /users to keep the gin route
// tree free of static-vs-param conflicts with /users/:id.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Me)
	rg.DELETE("/profile", h.DeleteMe)
	rg.GET("/subscriptions", h.Subscriptions)

	users := rg.Group("/users")
	{
		users.POST("/:id/subscribe", h.Subscribe)
		users.DELETE("/:id/subscribe", h.Unsubscribe)
	}
}

func (h *Handler) List(c *gin.Context) {
	viewerID := c.GetInt64("user_id")
	page, limit := pagination(c)

	list, err := h.service.List(c.Request.Context(), viewerID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	viewerID := c.GetInt64("user_id")
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	u, err := h.service.Get(c.Request.Context(), viewerID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get user")
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	u, err := h.service.Get(c.Request.Context(), userID, userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get profile")
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) DeleteMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Subscriptions(c *gin.Context) {
	userID := c.GetInt64("user_id")
	page, limit := pagination(c)

	list, err := h.service.Subscriptions(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list subscriptions")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Subscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), userID, authorID); err != nil {
		respondSubscribeError(c, err)
		return
	}

	author, err := h.service.Get(c.Request.Context(), userID, authorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load author")
		return
	}
	response.Success(c, http.StatusCreated, author)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		respondSubscribeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondSubscribeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, relation.ErrSelfSubscribe):
		response.Error(c, http.StatusBadRequest, "INVALID_TARGET", "Cannot subscribe to yourself")
	case errors.Is(err, relation.ErrAlreadyExists):
		response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "Already subscribed")
	case errors.Is(err, relation.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Subscription not found")
	case errors.Is(err, relation.ErrTargetNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Author not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Operation failed")
	}
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
