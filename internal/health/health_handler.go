package health

import (
	"context"
	"net/http"
	"time"

	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

var ErrDatabaseUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"database unavailable",
	http.StatusServiceUnavailable,
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db     Pinger
	logger *zap.Logger
	now    func() time.Time
}

func NewHandler(db Pinger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, logger: l, now: time.Now}
}

type StatusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health reports process liveness only.
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, StatusResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Ready additionally requires the database to answer a ping.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		httpErr := apperror.ToHTTP(ErrDatabaseUnavailable)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}
