package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/workload"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioBody = `{"jobs":[
	{"name":"P1","arrival_time":0,"burst_time":5},
	{"name":"P2","arrival_time":1,"burst_time":3},
	{"name":"P3","arrival_time":2,"burst_time":1}]}`

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		Workload: workload.Params{Count: 6, MaxArrival: 10, MeanBurst: 5, BurstStdDev: 2, Seed: 11},
	}
	return NewApp(NewSchedulerHandlerImpl(cfg))
}

func do(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestScheduleEndpoints(t *testing.T) {
	tests := []struct {
		path    string
		average float64
	}{
		{"/api/v1/fifo", 19.0 / 3.0},
		{"/api/v1/sjf", 17.0 / 3.0},
		{"/api/v1/srt", 14.0 / 3.0},
	}
	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var resp responses.ScheduleResponse
			status := do(t, app, http.MethodPost, tt.path, scenarioBody, &resp)
			assert.Equal(t, http.StatusOK, status)
			assert.InDelta(t, tt.average, resp.AverageTurnAroundTime, 1e-9)
			assert.Len(t, resp.Details, 3)
		})
	}
}

func TestAllAlgorithms(t *testing.T) {
	var resp responses.ComparisonResponse
	status := do(t, newTestApp(), http.MethodPost, "/api/v1/all", scenarioBody, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, []string{"FIFO", "SJF", "SRT"},
		[]string{resp.Results[0].Algorithm, resp.Results[1].Algorithm, resp.Results[2].Algorithm})
}

func TestInvalidWorkload(t *testing.T) {
	var resp map[string]string
	status := do(t, newTestApp(), http.MethodPost, "/api/v1/srt",
		`{"jobs":[{"name":"P1","arrival_time":0,"burst_time":0}]}`, &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["error"], "burst time must be positive")

	status = do(t, newTestApp(), http.MethodPost, "/api/v1/fifo", `{"jobs":`, &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request format", resp["error"])
}

func TestGenerateWorkload(t *testing.T) {
	app := newTestApp()

	var defaults requests.ScheduleRequests
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/v1/generate", "", &defaults))
	assert.Len(t, defaults.Jobs, 6)

	var custom requests.ScheduleRequests
	require.Equal(t, http.StatusOK, do(t, app, http.MethodPost, "/api/v1/generate", `{"count":3,"max_arrival":0}`, &custom))
	require.Len(t, custom.Jobs, 3)
	for _, j := range custom.Jobs {
		assert.Equal(t, 0, j.ArrivalTime)
		assert.Positive(t, j.BurstTime)
	}

	var errResp map[string]string
	assert.Equal(t, http.StatusBadRequest, do(t, app, http.MethodPost, "/api/v1/generate", `{"count":0}`, &errResp))
}

func TestSimulate(t *testing.T) {
	var resp responses.SimulationResponse
	status := do(t, newTestApp(), http.MethodGet, "/api/v1/simulate?n=4&seed=3", "", &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Jobs, 4)
	require.Len(t, resp.Results, 3)
	for _, r := range resp.Results {
		assert.Len(t, r.Details, 4)
	}
}

func TestSimulateRejectsOversizedParameters(t *testing.T) {
	var resp map[string]string
	status := do(t, newTestApp(), http.MethodGet, "/api/v1/simulate?k=9223372036854775807", "", &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["error"], "max arrival")

	status = do(t, newTestApp(), http.MethodPost, "/api/v1/generate", `{"mean_burst":1e300}`, &resp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp["error"], "mean burst")
}
