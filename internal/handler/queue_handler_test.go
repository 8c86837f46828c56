package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/mocks"
	"github.com/ekrsw/knowledge-app-sub000/internal/service"
)

func newQueueRouter(svc service.QueueServiceInterface) *gin.Engine {
	h := NewQueueHandler(svc)
	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/queue", h.GetQueue)
		api.GET("/queue/workload", h.GetWorkload)
		api.GET("/queue/metrics", h.GetMetrics)
	}
	return router
}

func TestQueueHandler_GetQueue(t *testing.T) {
	t.Run("returns ranked entries", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		entries := []domain.ApprovalQueueEntry{
			{RevisionID: "rev-1", Priority: domain.PriorityUrgent, Overdue: true},
			{RevisionID: "rev-2", Priority: domain.PriorityLow},
		}
		mockService.EXPECT().
			BuildQueue(mock.Anything, "approver-1", (*domain.Priority)(nil), 0).
			Return(entries, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue", "approver-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
		assert.Contains(t, w.Body.String(), "rev-1")
	})

	t.Run("parses priority and limit", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		urgent := domain.PriorityUrgent
		mockService.EXPECT().
			BuildQueue(mock.Anything, "approver-1", &urgent, 25).
			Return(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue?priority=urgent&limit=25", "approver-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue?priority=asap", "approver-1", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps unknown approver to 404", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		mockService.EXPECT().
			BuildQueue(mock.Anything, "ghost", (*domain.Priority)(nil), 0).
			Return(nil, domain.ErrUserNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue", "ghost", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQueueHandler_GetWorkload(t *testing.T) {
	mockService := mocks.NewMockQueueServiceInterface(t)
	router := newQueueRouter(mockService)

	mockService.EXPECT().
		Workload(mock.Anything, "approver-1").
		Return(&domain.WorkloadSummary{
			ApproverID:   "approver-1",
			PendingCount: 7,
			Capacity:     domain.CapacityHigh,
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue/workload", "approver-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"capacity":"high"`)
}

func TestQueueHandler_GetMetrics(t *testing.T) {
	t.Run("passes window through", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		mockService.EXPECT().
			Metrics(mock.Anything, 14).
			Return(&domain.ApprovalMetrics{DaysBack: 14, ApprovedCount: 5}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue/metrics?days_back=14", "approver-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"days_back":14`)
	})

	t.Run("rejects malformed window", func(t *testing.T) {
		mockService := mocks.NewMockQueueServiceInterface(t)
		router := newQueueRouter(mockService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/queue/metrics?days_back=soon", "approver-1", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
