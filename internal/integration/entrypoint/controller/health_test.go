package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func checkHealth(t *testing.T, database, redis DependencyCheck) HealthStatus {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthController(database, redis).Check)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(recorder.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return status
}

func TestHealthCheckAllDependenciesUp(t *testing.T) {
	status := checkHealth(t, func() bool { return true }, func() bool { return true })

	if status.Status != "ok" {
		t.Errorf("expected status ok, got %q", status.Status)
	}
	if status.Database != "up" || status.Redis != "up" {
		t.Errorf("expected both dependencies up, got database=%q redis=%q", status.Database, status.Redis)
	}
	if status.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestHealthCheckDatabaseDownDegrades(t *testing.T) {
	status := checkHealth(t, func() bool { return false }, func() bool { return true })

	if status.Status != "degraded" {
		t.Errorf("expected status degraded, got %q", status.Status)
	}
	if status.Database != "down" {
		t.Errorf("expected database down, got %q", status.Database)
	}
}

func TestHealthCheckRedisDownStaysOK(t *testing.T) {
	status := checkHealth(t, func() bool { return true }, func() bool { return false })

	// The rate limiter fails open, so redis being down is informational only.
	if status.Status != "ok" {
		t.Errorf("expected status ok, got %q", status.Status)
	}
	if status.Redis != "down" {
		t.Errorf("expected redis down, got %q", status.Redis)
	}
}

func TestHealthCheckNilCheckersReportDown(t *testing.T) {
	status := checkHealth(t, nil, nil)

	if status.Status != "degraded" {
		t.Errorf("expected status degraded, got %q", status.Status)
	}
	if status.Database != "down" || status.Redis != "down" {
		t.Errorf("expected both dependencies down, got database=%q redis=%q", status.Database, status.Redis)
	}
}
