package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hivesim/internal/app/ports"
	"hivesim/internal/app/replay"
	"hivesim/internal/app/status"
	"hivesim/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	StatusUC status.UseCase
	ReplayUC replay.UseCase
	KPI      kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	sim := s.Group("/api/sim")
	sim.GET("/state", h.state)
	sim.GET("/events", h.events)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp.Snapshot)
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeError(ctx, err)
		return
	}
	fromTick, err := queryInt(ctx, "from_tick")
	if err != nil {
		writeError(ctx, err)
		return
	}
	toTick, err := queryInt(ctx, "to_tick")
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Limit:    int(limit),
		Type:     colony.EventType(strings.TrimSpace(string(ctx.Query("type")))),
		AgentID:  string(ctx.Query("agent_id")),
		FromTick: fromTick,
		ToTick:   toTick,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

var ErrInvalidQuery = errors.New("invalid query parameter")

func queryInt(ctx *app.RequestContext, key string) (int64, error) {
	raw := strings.TrimSpace(string(ctx.Query(key)))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, key, raw)
	}
	return n, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuery),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotRunning):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_running", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
