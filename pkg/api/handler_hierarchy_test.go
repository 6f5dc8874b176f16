package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiveflow/hiveflow/pkg/models"
	"github.com/hiveflow/hiveflow/pkg/runner"
	"github.com/hiveflow/hiveflow/pkg/services"
)

func sampleHierarchy(id string) *models.Hierarchy {
	return &models.Hierarchy{
		ID:         id,
		Name:       "incident-response",
		Supervisor: "sup-agent",
		Teams: []models.Team{
			{ID: "t-1", Name: "triage", Agent: "triage-agent", Workers: []models.Worker{
				{ID: "w-1", Name: "scanner", Agent: "scanner-agent"},
			}},
		},
	}
}

func TestCreateHierarchyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/hierarchies/create", models.CreateHierarchyRequest{
		Name:       "incident-response",
		Supervisor: "sup-agent",
		Teams:      sampleHierarchy("").Teams,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var h models.Hierarchy
	require.NoError(t, json.Unmarshal(env.Data, &h))
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "incident-response", h.Name)
}

func TestCreateHierarchyValidation(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/hierarchies/create", models.CreateHierarchyRequest{Supervisor: "s"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "name")
}

func TestGetHierarchyEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.hierarchies.hierarchies["h-1"] = sampleHierarchy("h-1")

	rec, env := ts.post(t, "/hierarchies/get", map[string]string{"hierarchy_id": "h-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var h models.Hierarchy
	require.NoError(t, json.Unmarshal(env.Data, &h))
	assert.Equal(t, "h-1", h.ID)
	require.Len(t, h.Teams, 1)
	assert.Equal(t, "triage", h.Teams[0].Name)
}

func TestGetHierarchyNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.post(t, "/hierarchies/get", map[string]string{"hierarchy_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "resource not found", env.Error)
}

func TestListHierarchiesEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.hierarchies.hierarchies["h-1"] = sampleHierarchy("h-1")
	ts.hierarchies.hierarchies["h-2"] = sampleHierarchy("h-2")

	rec, env := ts.post(t, "/hierarchies/list", map[string]int{"page": 1, "size": 20})
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.Page
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestDeleteHierarchyEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.hierarchies.hierarchies["h-1"] = sampleHierarchy("h-1")

	rec, env := ts.post(t, "/hierarchies/delete", map[string]string{"hierarchy_id": "h-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotContains(t, ts.hierarchies.hierarchies, "h-1")
}

func TestDeleteHierarchyWithRuns(t *testing.T) {
	ts := newTestServer(t)
	ts.hierarchies.hierarchies["h-1"] = sampleHierarchy("h-1")
	ts.hierarchies.deleteErr = fmt.Errorf("hierarchy h-1 has runs: %w", services.ErrInvalidInput)

	rec, env := ts.post(t, "/hierarchies/delete", map[string]string{"hierarchy_id": "h-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "invalid input")
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	require.NotNil(t, resp.WorkerPool)
	assert.True(t, resp.WorkerPool.IsHealthy)
}

func TestHealthEndpointDegradedPool(t *testing.T) {
	ts := newTestServer(t)
	ts.manager.health = &runner.PoolHealth{IsHealthy: false, DBReachable: false, DBError: "connection refused"}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
}

func TestSecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
