package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/service"
)

// QueueHandler handles approval queue HTTP requests.
type QueueHandler struct {
	queueService service.QueueServiceInterface
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(queueService service.QueueServiceInterface) *QueueHandler {
	return &QueueHandler{
		queueService: queueService,
	}
}

// GetQueue handles GET /api/v1/queue?priority=<p>&limit=<n>
func (h *QueueHandler) GetQueue(c *gin.Context) {
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var priorityFilter *domain.Priority
	if raw := c.Query("priority"); raw != "" {
		p := domain.Priority(raw)
		if !domain.IsValidPriority(p) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of: low, medium, high, urgent"})
			return
		}
		priorityFilter = &p
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := h.queueService.BuildQueue(c.Request.Context(), approverID, priorityFilter, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetWorkload handles GET /api/v1/queue/workload
func (h *QueueHandler) GetWorkload(c *gin.Context) {
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	summary, err := h.queueService.Workload(c.Request.Context(), approverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMetrics handles GET /api/v1/queue/metrics?days_back=<n>
func (h *QueueHandler) GetMetrics(c *gin.Context) {
	daysBack := 0
	if raw := c.Query("days_back"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days_back must be a non-negative integer"})
			return
		}
		daysBack = n
	}

	m, err := h.queueService.Metrics(c.Request.Context(), daysBack)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
