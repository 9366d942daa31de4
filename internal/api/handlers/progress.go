package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/fm-teamselect/internal/progress"
)

// ProgressHandler upgrades a request to a WebSocket subscription on one
// run's slot-fill events, mirroring the teacher's HandleWebSocket pattern.
type ProgressHandler struct {
	hub    *progress.Hub
	logger *logrus.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(hub *progress.Hub, logger *logrus.Logger) *ProgressHandler {
	return &ProgressHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection and streams assign.SlotEvent JSON frames
// for the run named by the :run_id path parameter.
func (h *ProgressHandler) Subscribe(c *gin.Context) {
	runID := c.Param("run_id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "run_id is required", Code: "INVALID_REQUEST"})
		return
	}
	if err := h.hub.Serve(c.Writer, c.Request, runID); err != nil {
		h.logger.WithError(err).Warn("progress: websocket upgrade failed")
	}
}
