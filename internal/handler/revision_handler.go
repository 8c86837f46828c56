package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/service"
)

// RevisionHandler handles revision workflow HTTP requests.
type RevisionHandler struct {
	revisionService service.RevisionServiceInterface
}

// NewRevisionHandler creates a new RevisionHandler.
func NewRevisionHandler(revisionService service.RevisionServiceInterface) *RevisionHandler {
	return &RevisionHandler{
		revisionService: revisionService,
	}
}

type decisionRequest struct {
	Decision domain.Decision `json:"decision"`
	Comment  string          `json:"comment"`
}

type bulkDecisionRequest struct {
	Decisions []service.DecisionRequest `json:"decisions"`
}

// CreateRevision handles POST /api/v1/revisions
func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	proposerID, ok := actorID(c)
	if !ok {
		return
	}

	var in domain.RevisionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rev, err := h.revisionService.Create(c.Request.Context(), proposerID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// UpdateRevision handles PUT /api/v1/revisions/:id
func (h *RevisionHandler) UpdateRevision(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}
	proposerID, ok := actorID(c)
	if !ok {
		return
	}

	var in domain.RevisionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rev, err := h.revisionService.Update(c.Request.Context(), id, proposerID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// SubmitRevision handles POST /api/v1/revisions/:id/submit
func (h *RevisionHandler) SubmitRevision(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}
	proposerID, ok := actorID(c)
	if !ok {
		return
	}

	rev, err := h.revisionService.Submit(c.Request.Context(), id, proposerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// WithdrawRevision handles POST /api/v1/revisions/:id/withdraw
func (h *RevisionHandler) WithdrawRevision(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}
	proposerID, ok := actorID(c)
	if !ok {
		return
	}

	rev, err := h.revisionService.Withdraw(c.Request.Context(), id, proposerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// DeleteRevision handles DELETE /api/v1/revisions/:id
func (h *RevisionHandler) DeleteRevision(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}
	proposerID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.revisionService.Delete(c.Request.Context(), id, proposerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DecideRevision handles POST /api/v1/revisions/:id/decision
func (h *RevisionHandler) DecideRevision(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rev, err := h.revisionService.Decide(c.Request.Context(), id, approverID, req.Decision, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// BulkDecide handles POST /api/v1/revisions/decisions
func (h *RevisionHandler) BulkDecide(c *gin.Context) {
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var req bulkDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Decisions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decisions must not be empty"})
		return
	}

	outcomes := h.revisionService.BulkDecide(c.Request.Context(), approverID, req.Decisions)
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

// GetDiff handles GET /api/v1/revisions/:id/diff
func (h *RevisionHandler) GetDiff(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}

	rd, err := h.revisionService.Diff(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rd)
}

// GetDiffSummary handles GET /api/v1/revisions/:id/diff/summary
func (h *RevisionHandler) GetDiffSummary(c *gin.Context) {
	id, ok := revisionID(c)
	if !ok {
		return
	}

	summary, err := h.revisionService.DiffSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CompareRevisions handles GET /api/v1/revisions/compare?a=<id>&b=<id>
func (h *RevisionHandler) CompareRevisions(c *gin.Context) {
	idA := c.Query("a")
	idB := c.Query("b")
	if _, err := uuid.Parse(idA); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a must be a valid revision UUID"})
		return
	}
	if _, err := uuid.Parse(idB); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "b must be a valid revision UUID"})
		return
	}

	cmp, err := h.revisionService.CompareRevisions(c.Request.Context(), idA, idB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// revisionID validates the :id path parameter.
func revisionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}
