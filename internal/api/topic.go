package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

type TopicHandler struct {
	topics service.ITopicService
	tokens middleware.TokenValidator
}

func NewTopicHandler(topics service.ITopicService, tokens middleware.TokenValidator) *TopicHandler {
	return &TopicHandler{topics: topics, tokens: tokens}
}

func (h *TopicHandler) RegisterRoutes(router *gin.RouterGroup) {
	topics := router.Group("/topics")
	{
		topics.GET("", h.ListTopics)
		topics.GET("/:id", h.GetTopic)
		topics.POST("", middleware.AuthMiddleware(h.tokens), h.CreateTopic)
	}
}

func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	topic, err := h.topics.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic})
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topic, err := h.topics.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
