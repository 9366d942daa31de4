package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/fm-teamselect/internal/cache"
	"github.com/jstittsworth/fm-teamselect/internal/pipeline"
	"github.com/jstittsworth/fm-teamselect/internal/progress"
	"github.com/jstittsworth/fm-teamselect/internal/teamerrors"
)

// ErrorResponse mirrors the teacher's types.ErrorResponse shape: a short
// machine-readable code plus a human message.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SelectionRequest is the JSON body a caller submits: the role file as raw
// text, and the player table as a 2-D array of strings (already split into
// rows/columns — this endpoint does not parse CSV/XLSX itself).
type SelectionRequest struct {
	RoleFile string     `json:"role_file" binding:"required"`
	Table    [][]string `json:"table" binding:"required"`
}

// SelectionResponse is the JSON result of a successful selection.
type SelectionResponse struct {
	RunID      string   `json:"run_id"`
	Report     string   `json:"report"`
	Unassigned []string `json:"unassigned,omitempty"`
	Cached     bool     `json:"cached"`
}

// TeamSelectHandler runs the pipeline behind the HTTP surface: cache lookup,
// progress broadcast over the run's WebSocket subscribers, cache store.
type TeamSelectHandler struct {
	cache       *cache.ReportCache
	cacheTTL    time.Duration
	cacheOn     bool
	progressHub *progress.Hub
	logger      *logrus.Logger
}

// NewTeamSelectHandler creates a TeamSelectHandler. cache may be nil when
// caching is disabled.
func NewTeamSelectHandler(reportCache *cache.ReportCache, cacheTTL time.Duration, cacheOn bool, hub *progress.Hub, logger *logrus.Logger) *TeamSelectHandler {
	return &TeamSelectHandler{cache: reportCache, cacheTTL: cacheTTL, cacheOn: cacheOn, progressHub: hub, logger: logger}
}

// Select runs one team-selection invocation under a freshly generated uuid
// run ID, which is returned in the response. Slot events are broadcast to
// /ws/progress/:run_id subscribers of that ID while the solver runs; the ID
// is first revealed in the response, after the solver has finished, so a
// caller cannot subscribe to this request's events before or during it.
func (h *TeamSelectHandler) Select(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	runID := uuid.NewString()
	log := h.logger.WithFields(logrus.Fields{"run_id": runID})

	roleFileBytes := []byte(req.RoleFile)
	tableBytes := encodeTable(req.Table)

	var cacheKey string
	if h.cacheOn && h.cache != nil {
		cacheKey = cache.Key(roleFileBytes, tableBytes)
		if cached, hit, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil && hit {
			log.Info("serving cached team selection report")
			c.JSON(http.StatusOK, SelectionResponse{RunID: runID, Report: cached, Cached: true})
			return
		} else if err != nil {
			log.WithError(err).Warn("cache lookup failed, continuing without it")
		}
	}

	onSlot := h.progressHub.Observer(runID)

	result, err := pipeline.Run(roleFileBytes, req.Table, onSlot)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	if h.cacheOn && h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), cacheKey, result.Report, h.cacheTTL); err != nil {
			log.WithError(err).Warn("failed to store report in cache")
		}
	}

	c.JSON(http.StatusOK, SelectionResponse{
		RunID:      runID,
		Report:     result.Report,
		Unassigned: result.Unassigned,
	})
}

// writePipelineError maps a core teamerrors.Error to an HTTP response;
// anything else (a programmer error) is a 500.
func writePipelineError(c *gin.Context, err error) {
	if te, ok := teamerrors.As(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: te.Error(), Code: string(te.Kind)})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
}

// encodeTable flattens the table deterministically for cache-key hashing;
// it is never sent over the wire itself.
func encodeTable(rows [][]string) []byte {
	var buf []byte
	for _, row := range rows {
		for _, cell := range row {
			buf = append(buf, cell...)
			buf = append(buf, 0)
		}
		buf = append(buf, '\n')
	}
	return buf
}
