package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hivesim/internal/adapter/repo/memory"
	"hivesim/internal/app/ports"
	"hivesim/internal/app/replay"
	"hivesim/internal/app/status"
	"hivesim/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakeSource struct {
	snap colony.Snapshot
	ok   bool
}

func (s fakeSource) Latest() (colony.Snapshot, bool) { return s.snap, s.ok }

type fakeKPI struct{}

func (fakeKPI) SnapshotAny() any { return map[string]int{"ticks": 7} }

func errorCode(t *testing.T, ctx *app.RequestContext) string {
	t.Helper()
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	code, _ := body["error"]["code"].(string)
	return code
}

func seededRepo(t *testing.T) memory.EventRepo {
	t.Helper()
	repo := memory.NewEventRepo(memory.NewStore(16))
	err := repo.Append(context.Background(), []colony.DomainEvent{
		{Type: colony.EventResourceDiscovered, Tick: 1, AgentID: "scout-1"},
		{Type: colony.EventResourceTargeted, Tick: 1, AgentID: "collector-1"},
		{Type: colony.EventResourceDeposited, Tick: 12, AgentID: "collector-1"},
	})
	if err != nil {
		t.Fatalf("seed events: %v", err)
	}
	return repo
}

func TestState_ReturnsSnapshot(t *testing.T) {
	h := Handler{StatusUC: status.UseCase{Source: fakeSource{snap: colony.Snapshot{RunID: "run-1", Tick: 9}, ok: true}}}
	ctx := &app.RequestContext{}

	h.state(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var snap colony.Snapshot
	if err := json.Unmarshal(ctx.Response.Body(), &snap); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if snap.RunID != "run-1" || snap.Tick != 9 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestState_NotRunning(t *testing.T) {
	h := Handler{StatusUC: status.UseCase{Source: fakeSource{}}}
	ctx := &app.RequestContext{}

	h.state(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusServiceUnavailable; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got := errorCode(t, ctx); got != "not_running" {
		t.Fatalf("error code mismatch: got=%q", got)
	}
}

func TestEvents_FiltersByQuery(t *testing.T) {
	h := Handler{ReplayUC: replay.UseCase{Events: seededRepo(t)}}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/sim/events?agent_id=collector-1&from_tick=2")

	h.events(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	var resp replay.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Type != colony.EventResourceDeposited {
		t.Fatalf("expected only the deposit, got %+v", resp.Events)
	}
}

func TestEvents_RejectsMalformedQuery(t *testing.T) {
	h := Handler{ReplayUC: replay.UseCase{Events: seededRepo(t)}}
	for _, uri := range []string{
		"/api/sim/events?limit=abc",
		"/api/sim/events?limit=-2",
		"/api/sim/events?from_tick=9&to_tick=3",
	} {
		ctx := &app.RequestContext{}
		ctx.Request.SetRequestURI(uri)

		h.events(context.Background(), ctx)

		if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
			t.Fatalf("%s: status mismatch: got=%d want=%d", uri, got, want)
		}
		if got := errorCode(t, ctx); got != "bad_request" {
			t.Fatalf("%s: error code mismatch: got=%q", uri, got)
		}
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	ctx := &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got := errorCode(t, ctx); got != "not_configured" {
		t.Fatalf("error code mismatch: got=%q", got)
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrInvalidQuery, consts.StatusBadRequest, "bad_request"},
		{replay.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{ports.ErrNotRunning, consts.StatusServiceUnavailable, "not_running"},
		{ports.ErrNotFound, consts.StatusNotFound, "not_found"},
		{errors.New("boom"), consts.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status mismatch: got=%d want=%d", tc.err, got, tc.status)
		}
		if got := errorCode(t, ctx); got != tc.code {
			t.Fatalf("%v: code mismatch: got=%q want=%q", tc.err, got, tc.code)
		}
	}
}

func TestRegisterRoutes_ServesWithCORS(t *testing.T) {
	s := server.Default()
	Handler{
		StatusUC: status.UseCase{Source: fakeSource{snap: colony.Snapshot{Tick: 3}, ok: true}},
		ReplayUC: replay.UseCase{Events: seededRepo(t)},
		KPI:      fakeKPI{},
	}.RegisterRoutes(s)

	for _, path := range []string{"/api/sim/state", "/api/sim/events?limit=2", "/ops/kpi"} {
		resp := ut.PerformRequest(s.Engine, consts.MethodGet, path, nil).Result()
		if got, want := resp.StatusCode(), consts.StatusOK; got != want {
			t.Fatalf("%s: status mismatch: got=%d want=%d", path, got, want)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("%s: missing cors header, got %q", path, got)
		}
	}
}
