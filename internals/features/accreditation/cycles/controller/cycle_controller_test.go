package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/cycles/service"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

type fakeRunner struct {
	known     uuid.UUID
	lastWhat  map[uuid.UUID]float64
	whatIfErr error
}

func (f *fakeRunner) SimulateFromRecords(_ context.Context, id uuid.UUID) (service.Simulation, error) {
	if id != f.known {
		return service.Simulation{}, service.ErrCycleNotFound
	}
	return service.Simulation{CycleID: id, Mode: service.ModeRecords, Result: scoring.Result{TotalScore: 312, PredictedLevel: "Baik Sekali"}}, nil
}

func (f *fakeRunner) SimulateWhatIf(_ context.Context, id uuid.UUID, scores map[uuid.UUID]float64) (service.Simulation, error) {
	f.lastWhat = scores
	if f.whatIfErr != nil {
		return service.Simulation{}, f.whatIfErr
	}
	return service.Simulation{CycleID: id, Mode: service.ModeWhatIf}, nil
}

type fakeRecorder struct {
	err  error
	last service.ScoreInput
}

func (f *fakeRecorder) Record(_ context.Context, id uuid.UUID, in service.ScoreInput) (model.IndicatorScoreModel, error) {
	f.last = in
	if f.err != nil {
		return model.IndicatorScoreModel{}, f.err
	}
	return model.IndicatorScoreModel{
		IndicatorScoreID:          uuid.New(),
		IndicatorScoreCycleID:     id,
		IndicatorScoreIndicatorID: in.IndicatorID,
		IndicatorScoreValue:       in.Value,
		IndicatorScoreSource:      string(in.Source),
	}, nil
}

type fakeSnap struct{}

func (fakeSnap) Take(_ context.Context, id uuid.UUID, trigger string) (model.SimulationSnapshotModel, error) {
	return model.SimulationSnapshotModel{SnapshotID: uuid.New(), SnapshotCycleID: id, SnapshotTrigger: trigger}, nil
}

type fakeSnapshots struct {
	known uuid.UUID
	rows  []model.SimulationSnapshotModel
}

func (f fakeSnapshots) FindCycle(_ context.Context, id uuid.UUID) (model.CycleModel, error) {
	if id != f.known {
		return model.CycleModel{}, gorm.ErrRecordNotFound
	}
	return model.CycleModel{CycleID: id}, nil
}

func (f fakeSnapshots) ListSnapshots(_ context.Context, _ uuid.UUID, offset, limit int) ([]model.SimulationSnapshotModel, int64, error) {
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	if offset > end {
		offset = end
	}
	return f.rows[offset:end], int64(len(f.rows)), nil
}

type testEnv struct {
	app      *fiber.App
	cycleID  uuid.UUID
	runner   *fakeRunner
	recorder *fakeRecorder
}

func newTestEnv() testEnv {
	cycleID := uuid.New()
	runner := &fakeRunner{known: cycleID}
	recorder := &fakeRecorder{}
	rows := make([]model.SimulationSnapshotModel, 3)
	for i := range rows {
		rows[i] = model.SimulationSnapshotModel{SnapshotID: uuid.New(), SnapshotCycleID: cycleID}
	}
	ctl := &CycleController{
		Sim:       runner,
		Recorder:  recorder,
		Snap:      fakeSnap{},
		Snapshots: fakeSnapshots{known: cycleID, rows: rows},
		Validator: validator.New(),
	}

	app := fiber.New()
	g := app.Group("/cycles/:cycle_id")
	g.Get("/simulation", ctl.GetSimulation)
	g.Post("/simulation", ctl.WhatIf)
	g.Post("/scores", ctl.CreateScore)
	g.Post("/snapshots", ctl.CreateSnapshot)
	g.Get("/snapshots", ctl.ListSnapshots)
	return testEnv{app: app, cycleID: cycleID, runner: runner, recorder: recorder}
}

func (e testEnv) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestGetSimulation(t *testing.T) {
	env := newTestEnv()

	status, body := env.do(t, http.MethodGet, "/cycles/"+env.cycleID.String()+"/simulation", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	data := body["data"].(map[string]any)
	result := data["result"].(map[string]any)
	if result["predicted_level"] != "Baik Sekali" || result["total_score"].(float64) != 312 {
		t.Fatalf("unexpected result: %v", result)
	}

	if status, _ := env.do(t, http.MethodGet, "/cycles/"+uuid.NewString()+"/simulation", ""); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if status, _ := env.do(t, http.MethodGet, "/cycles/bukan-uuid/simulation", ""); status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestWhatIf(t *testing.T) {
	env := newTestEnv()
	ind := uuid.New()
	path := "/cycles/" + env.cycleID.String() + "/simulation"

	status, body := env.do(t, http.MethodPost, path, fmt.Sprintf(`{"scores":{"%s":3.5}}`, ind))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if env.runner.lastWhat[ind] != 3.5 {
		t.Fatalf("scores not forwarded: %v", env.runner.lastWhat)
	}

	if status, _ := env.do(t, http.MethodPost, path, `{"scores":{"A1":3}}`); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-uuid key, got %d", status)
	}

	env.runner.whatIfErr = fmt.Errorf("wrap: %w", service.ErrScoreOutOfRange)
	if status, _ := env.do(t, http.MethodPost, path, fmt.Sprintf(`{"scores":{"%s":9}}`, ind)); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
}

func TestCreateScore(t *testing.T) {
	env := newTestEnv()
	path := "/cycles/" + env.cycleID.String() + "/scores"
	ind := uuid.New()

	status, body := env.do(t, http.MethodPost, path, fmt.Sprintf(`{"indicator_id":"%s","value":3.25,"source":"assessor_external"}`, ind))
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", status, body)
	}
	if env.recorder.last.IndicatorID != ind || env.recorder.last.Source != scoring.SourceAssessorExternal {
		t.Fatalf("input not forwarded: %+v", env.recorder.last)
	}

	tests := []struct {
		name   string
		err    error
		body   string
		status int
	}{
		{"invalid source rejected by validator", nil, fmt.Sprintf(`{"indicator_id":"%s","value":1,"source":"dosen"}`, ind), http.StatusUnprocessableEntity},
		{"closed cycle", service.ErrCycleClosed, fmt.Sprintf(`{"indicator_id":"%s","value":1,"source":"coordinator"}`, ind), http.StatusConflict},
		{"unknown indicator", service.ErrUnknownIndicator, fmt.Sprintf(`{"indicator_id":"%s","value":1,"source":"coordinator"}`, ind), http.StatusUnprocessableEntity},
		{"unknown cycle", service.ErrCycleNotFound, fmt.Sprintf(`{"indicator_id":"%s","value":1,"source":"coordinator"}`, ind), http.StatusNotFound},
		{"broken body", nil, `{"indicator_id":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.recorder.err = tt.err
			if status, body := env.do(t, http.MethodPost, path, tt.body); status != tt.status {
				t.Fatalf("expected %d, got %d (%v)", tt.status, status, body)
			}
		})
	}
}

func TestSnapshots(t *testing.T) {
	env := newTestEnv()
	path := "/cycles/" + env.cycleID.String() + "/snapshots"

	status, body := env.do(t, http.MethodPost, path, "")
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", status, body)
	}
	if body["data"].(map[string]any)["snapshot_trigger"] != model.SnapshotTriggerManual {
		t.Fatalf("manual trigger expected: %v", body)
	}

	status, body = env.do(t, http.MethodGet, path+"?per_page=2", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if n := len(body["data"].([]any)); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	pg := body["pagination"].(map[string]any)
	if pg["total"].(float64) != 3 || pg["has_next"] != true {
		t.Fatalf("unexpected pagination: %v", pg)
	}

	if status, _ := env.do(t, http.MethodGet, "/cycles/"+uuid.NewString()+"/snapshots", ""); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}
