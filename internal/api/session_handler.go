package api

import (
	"net/http"

	"OddsLens/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionHandler 调用方会话管理接口
type SessionHandler struct {
	registry *session.Registry
	logger   *logrus.Logger
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(registry *session.Registry, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{registry: registry, logger: logger}
}

// Create 新建会话
// POST /api/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.registry.Create()
	h.logger.WithField("session_id", s.ID).Info("会话已创建")
	c.JSON(http.StatusCreated, s)
}

// Get 查询会话
// GET /api/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.registry.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Touch 刷新会话活跃时间并合并 meta
// PUT /api/sessions/:id
func (h *SessionHandler) Touch(c *gin.Context) {
	var meta map[string]string
	if err := c.ShouldBindJSON(&meta); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.registry.Touch(c.Param("id"), meta) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"touched": true})
}

// Delete 显式关闭会话
// DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if !h.registry.Evict(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
