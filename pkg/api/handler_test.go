package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ewanlister/shopfloor-scheduler/pkg/api"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/scoring/constraints"
	"github.com/ewanlister/shopfloor-scheduler/pkg/core/solver"
	"github.com/ewanlister/shopfloor-scheduler/pkg/jobs"
	"github.com/ewanlister/shopfloor-scheduler/pkg/problem"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2030, time.April, day, hour, minute, 0, 0, time.UTC)
}

func newFixture(t *testing.T) (*api.Handler, *jobs.Manager) {
	t.Helper()
	engine := scoring.NewEngine(constraints.Default())
	s := solver.New(engine, solver.Parameters{MaxSteps: 2000, Seed: 1}, zap.NewNop())
	manager := jobs.NewManager(s, 10, zap.NewNop())
	t.Cleanup(manager.Close)
	return api.NewHandler(manager, engine, zap.NewNop()), manager
}

func smallDefinition() *problem.Definition {
	return &problem.Definition{
		Shifts: []problem.ShiftDefinition{
			{Name: "Morning", Start: at(1, 6, 0), End: at(1, 14, 0)},
		},
		Employees: []problem.EmployeeDefinition{
			{Name: "Ann", Skills: []string{"Welding"}, Shift: "Morning"},
		},
		Lines: []problem.LineDefinition{
			{Name: "L1", Functions: []string{"Cutting"}},
		},
		TimeSlots: problem.TimeSlotDefinition{
			Times: []time.Time{at(1, 8, 0), at(1, 10, 0)},
		},
		Orders: []problem.OrderDefinition{
			{
				ProductName:          "Widget-A",
				Quantity:             10,
				WorkMinutes:          60,
				EarliestDate:         at(1, 0, 0),
				LatestDate:           at(2, 0, 0),
				RequiredSkill:        "Welding",
				RequiredLineFunction: "Cutting",
			},
		},
	}
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func submitAndAwait(t *testing.T, h *api.Handler, m *jobs.Manager, def *problem.Definition) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/schedules/solve", def)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JobID string `json:"jobID"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.JobID)

	_, err := m.Await(context.Background(), resp.JobID)
	require.NoError(t, err)
	return resp.JobID
}

func TestSolve_SubmitsProblem(t *testing.T) {
	h, m := newFixture(t)

	jobID := submitAndAwait(t, h, m, smallDefinition())

	rec := doJSON(t, h, http.MethodGet, "/schedules/"+jobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Score        string              `json:"score"`
		SolverStatus string              `json:"solverStatus"`
		Schedule     *problem.Definition `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_SOLVING", resp.SolverStatus)
	require.NotNil(t, resp.Schedule)
	assert.Equal(t, "Ann", resp.Schedule.Orders[0].Employee)
	assert.Equal(t, "L1", resp.Schedule.Orders[0].Line)
	assert.Contains(t, resp.Score, "0hard")
}

func TestSolve_EmptyBodyUsesDefaultProblem(t *testing.T) {
	h, m := newFixture(t)

	rec := doJSON(t, h, http.MethodPost, "/schedules/solve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JobID string `json:"jobID"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	job, err := m.Await(context.Background(), resp.JobID)
	require.NoError(t, err)
	assert.Len(t, job.Schedule.Orders, 82)
}

func TestSolve_MalformedBody(t *testing.T) {
	h, _ := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/schedules/solve", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolve_RejectsProblemWithoutEmployees(t *testing.T) {
	h, _ := newFixture(t)
	def := smallDefinition()
	def.Employees = nil

	rec := doJSON(t, h, http.MethodPost, "/schedules/solve", def)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSchedule_UnknownJob(t *testing.T) {
	h, _ := newFixture(t)

	rec := doJSON(t, h, http.MethodGet, "/schedules/no-such-job", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStatus_OmitsSchedule(t *testing.T) {
	h, m := newFixture(t)
	jobID := submitAndAwait(t, h, m, smallDefinition())

	rec := doJSON(t, h, http.MethodGet, "/schedules/"+jobID+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_SOLVING", resp["solverStatus"])
	assert.NotContains(t, resp, "schedule")
}

func TestTerminate_ReturnsFinalSchedule(t *testing.T) {
	h, m := newFixture(t)
	jobID := submitAndAwait(t, h, m, smallDefinition())

	rec := doJSON(t, h, http.MethodDelete, "/schedules/"+jobID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SolverStatus string `json:"solverStatus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_SOLVING", resp.SolverStatus)
}

func TestList_ReturnsJobIDs(t *testing.T) {
	h, m := newFixture(t)
	jobID := submitAndAwait(t, h, m, smallDefinition())

	rec := doJSON(t, h, http.MethodGet, "/schedules/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Contains(t, ids, jobID)
}

func TestAnalyze_ReturnsConstraintBreakdown(t *testing.T) {
	h, _ := newFixture(t)

	def := smallDefinition()
	start := at(1, 8, 0)
	def.Orders[0].Employee = "Ann"
	def.Orders[0].Line = "L1"
	def.Orders[0].Start = &start

	rec := doJSON(t, h, http.MethodPut, "/schedules/analyze", def)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Score struct {
			Hard int `json:"hard"`
		} `json:"score"`
		Constraints []struct {
			Name    string `json:"name"`
			Tier    string `json:"tier"`
			Penalty int    `json:"penalty"`
		} `json:"constraints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Score.Hard)
	assert.Len(t, resp.Constraints, 12)
}

func TestAnalyze_RejectsMalformedBody(t *testing.T) {
	h, _ := newFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/schedules/analyze", bytes.NewReader([]byte("[")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
