//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://127.0.0.1:8080"), "/")
	client := &http.Client{Timeout: 10 * time.Second}

	t.Run("state advances between polls", func(t *testing.T) {
		first := mustState(t, client, baseURL)
		time.Sleep(500 * time.Millisecond)
		second := mustState(t, client, baseURL)

		if first["run_id"] != second["run_id"] {
			t.Fatalf("run id changed: %v -> %v", first["run_id"], second["run_id"])
		}
		if num(second["tick"]) <= num(first["tick"]) {
			t.Fatalf("tick did not advance: %v -> %v", first["tick"], second["tick"])
		}
		for _, a := range asSlice(second["agents"]) {
			pos := asMap(asMap(a)["position"])
			if x, y := num(pos["x"]), num(pos["y"]); x < 0 || x > num(second["width"]) || y < 0 || y > num(second["height"]) {
				t.Fatalf("agent outside arena: %v", a)
			}
		}
	})

	t.Run("events and kpi", func(t *testing.T) {
		status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/sim/events?limit=20", "")
		if err != nil {
			t.Fatalf("events request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("events status=%d body=%s", status, string(body))
		}
		var events map[string]any
		if err := json.Unmarshal(body, &events); err != nil {
			t.Fatalf("unmarshal events: %v body=%s", err, string(body))
		}
		if len(asSlice(events["events"])) > 20 {
			t.Fatalf("limit not applied: %d events", len(asSlice(events["events"])))
		}

		status, body, err = doRequest(client, http.MethodGet, baseURL+"/api/sim/events?limit=nope", "")
		if err != nil {
			t.Fatalf("bad events request: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}

		status, body, err = doRequest(client, http.MethodGet, baseURL+"/ops/kpi", "")
		if err != nil {
			t.Fatalf("kpi request: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		var kpi map[string]any
		if err := json.Unmarshal(body, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v", err)
		}
		if num(kpi["ticks"]) <= 0 {
			t.Fatalf("expected ticks in kpi, got %v", kpi)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		status, _, err := doRequest(client, http.MethodOptions, baseURL+"/api/sim/state", "https://viewer.example")
		if err != nil {
			t.Fatalf("preflight request: %v", err)
		}
		if status != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", status)
		}
	})
}

func mustState(t *testing.T, client *http.Client, baseURL string) map[string]any {
	t.Helper()
	status, body, err := doRequest(client, http.MethodGet, baseURL+"/api/sim/state", "")
	if err != nil {
		t.Fatalf("state request failed: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("state status=%d body=%s", status, string(body))
	}
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal state: %v body=%s", err, string(body))
	}
	return out
}

func doRequest(client *http.Client, method, url, origin string) (int, []byte, error) {
	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest(method, url, nil)
		if err != nil {
			return 0, nil, err
		}
		if origin != "" {
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func num(v any) float64 {
	f, _ := v.(float64)
	return f
}
