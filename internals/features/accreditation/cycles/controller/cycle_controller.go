// file: internals/features/accreditation/cycles/controller/cycle_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "akreditasi_backend/internals/features/accreditation/cycles/dto"
	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/cycles/service"
	helper "akreditasi_backend/internals/helpers"
)

type SimulationRunner interface {
	SimulateFromRecords(ctx context.Context, cycleID uuid.UUID) (service.Simulation, error)
	SimulateWhatIf(ctx context.Context, cycleID uuid.UUID, scores map[uuid.UUID]float64) (service.Simulation, error)
}

type ScoreRecorder interface {
	Record(ctx context.Context, cycleID uuid.UUID, in service.ScoreInput) (model.IndicatorScoreModel, error)
}

type SnapshotTaker interface {
	Take(ctx context.Context, cycleID uuid.UUID, trigger string) (model.SimulationSnapshotModel, error)
}

type SnapshotLister interface {
	FindCycle(ctx context.Context, cycleID uuid.UUID) (model.CycleModel, error)
	ListSnapshots(ctx context.Context, cycleID uuid.UUID, offset, limit int) ([]model.SimulationSnapshotModel, int64, error)
}

type CycleController struct {
	Sim       SimulationRunner
	Recorder  ScoreRecorder
	Snap      SnapshotTaker
	Snapshots SnapshotLister
	Validator *validator.Validate
}

func NewCycleController(svcs *service.Services) *CycleController {
	return &CycleController{
		Sim:       svcs.Simulator,
		Recorder:  svcs.Recorder,
		Snap:      svcs.Snapshotter,
		Snapshots: svcs.Store,
		Validator: validator.New(),
	}
}

func parseCycleID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("cycle_id")))
}

// writeServiceError memetakan error domain ke status HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCycleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCycleClosed):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownIndicator),
		errors.Is(err, service.ErrScoreOutOfRange),
		errors.Is(err, service.ErrInvalidSource):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return helper.JsonError(c, fiber.StatusGatewayTimeout, "Waktu proses habis")
	default:
		log.Printf("[ERROR] cycle %s %s: %v", c.Method(), c.Path(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

/* ====================== SIMULATION ====================== */

// GET /cycles/:cycle_id/simulation: dari record tersimpan
func (ctl *CycleController) GetSimulation(c *fiber.Ctx) error {
	cycleID, err := parseCycleID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}
	sim, err := ctl.Sim.SimulateFromRecords(c.UserContext(), cycleID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", sim)
}

// POST /cycles/:cycle_id/simulation: what-if, tidak ada yang disimpan
func (ctl *CycleController) WhatIf(c *fiber.Ctx) error {
	cycleID, err := parseCycleID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}

	var req dto.WhatIfRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	scores, err := req.ParseScores()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sim, err := ctl.Sim.SimulateWhatIf(c.UserContext(), cycleID, scores)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", sim)
}

/* ====================== SCORES ====================== */

// POST /cycles/:cycle_id/scores: append-only
func (ctl *CycleController) CreateScore(c *fiber.Ctx) error {
	cycleID, err := parseCycleID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}

	var req dto.CreateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req = req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Recorder.Record(c.UserContext(), cycleID, req.ToInput(helper.UserIDFromLocals(c)))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Nilai indikator tersimpan", dto.FromScoreModel(row))
}

/* ====================== SNAPSHOTS ====================== */

// POST /cycles/:cycle_id/snapshots
func (ctl *CycleController) CreateSnapshot(c *fiber.Ctx) error {
	cycleID, err := parseCycleID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}
	row, err := ctl.Snap.Take(c.UserContext(), cycleID, model.SnapshotTriggerManual)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Snapshot simulasi tersimpan", dto.FromSnapshotModel(row, true))
}

// GET /cycles/:cycle_id/snapshots?include_result=true
func (ctl *CycleController) ListSnapshots(c *fiber.Ctx) error {
	cycleID, err := parseCycleID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cycle_id tidak valid")
	}
	ctx := c.UserContext()
	if _, err := ctl.Snapshots.FindCycle(ctx, cycleID); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, service.ErrCycleNotFound.Error())
		}
		return writeServiceError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Snapshots.ListSnapshots(ctx, cycleID, p.Offset, p.Limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	includeResult := c.QueryBool("include_result", false)
	return helper.JsonList(c, "ok", dto.FromSnapshotModels(rows, includeResult), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}
