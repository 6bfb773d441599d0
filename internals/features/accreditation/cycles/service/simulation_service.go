// file: internals/features/accreditation/cycles/service/simulation_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
	"akreditasi_backend/internals/metrics"
)

var (
	ErrCycleNotFound    = errors.New("siklus akreditasi tidak ditemukan")
	ErrCycleClosed      = errors.New("siklus akreditasi sudah ditutup")
	ErrUnknownIndicator = errors.New("indikator bukan bagian dari skema LAM siklus ini")
	ErrScoreOutOfRange  = errors.New("nilai di luar skala LAM")
	ErrInvalidSource    = errors.New("sumber nilai tidak dikenal")
)

const (
	ModeRecords = "records"
	ModeWhatIf  = "what_if"
)

type CycleReader interface {
	FindCycle(ctx context.Context, cycleID uuid.UUID) (model.CycleModel, error)
	ListScoreRecords(ctx context.Context, cycleID uuid.UUID) ([]scoring.ScoreRecord, error)
}

type SchemeLoader interface {
	LoadScheme(ctx context.Context, lamID uuid.UUID) (scoring.Scheme, error)
}

// Simulation = hasil engine + konteks siklus (untuk respons & snapshot).
type Simulation struct {
	CycleID uuid.UUID            `json:"cycle_id"`
	LamID   uuid.UUID            `json:"lam_id"`
	LamCode string               `json:"lam_code"`
	Mode    string               `json:"mode"`
	Weights scoring.WeightReport `json:"weights"`
	Result  scoring.Result       `json:"result"`
}

// SimulationDocument: bentuk Simulation yang disimpan di snapshot.
type SimulationDocument struct {
	CycleID uuid.UUID              `json:"cycle_id"`
	LamID   uuid.UUID              `json:"lam_id"`
	LamCode string                 `json:"lam_code"`
	Mode    string                 `json:"mode"`
	Weights scoring.WeightReport   `json:"weights"`
	Result  scoring.ResultDocument `json:"result"`
}

func (s Simulation) Document() SimulationDocument {
	return SimulationDocument{
		CycleID: s.CycleID,
		LamID:   s.LamID,
		LamCode: s.LamCode,
		Mode:    s.Mode,
		Weights: s.Weights,
		Result:  s.Result.Document(),
	}
}

// Simulator does fetch-then-compute: all reads happen before the engine runs.
type Simulator struct {
	cycles  CycleReader
	schemes SchemeLoader
}

func NewSimulator(cycles CycleReader, schemes SchemeLoader) *Simulator {
	return &Simulator{cycles: cycles, schemes: schemes}
}

// Context resolves a cycle to its scheme snapshot.
func (s *Simulator) Context(ctx context.Context, cycleID uuid.UUID) (model.CycleModel, scoring.Scheme, error) {
	cycle, err := s.cycles.FindCycle(ctx, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.CycleModel{}, scoring.Scheme{}, ErrCycleNotFound
		}
		return model.CycleModel{}, scoring.Scheme{}, err
	}
	scheme, err := s.schemes.LoadScheme(ctx, cycle.CycleLamID)
	if err != nil {
		return model.CycleModel{}, scoring.Scheme{}, err
	}
	return cycle, scheme, nil
}

func (s *Simulator) SimulateFromRecords(ctx context.Context, cycleID uuid.UUID) (Simulation, error) {
	start := time.Now()
	cycle, scheme, err := s.Context(ctx, cycleID)
	if err != nil {
		return Simulation{}, err
	}
	records, err := s.cycles.ListScoreRecords(ctx, cycleID)
	if err != nil {
		return Simulation{}, fmt.Errorf("list score records: %w", err)
	}
	return s.run(cycle, scheme, ModeRecords, scoring.ResolveScores(records), start), nil
}

// SimulateWhatIf memakai skor hipotetis langsung dari caller; tidak ada yang ditulis.
func (s *Simulator) SimulateWhatIf(ctx context.Context, cycleID uuid.UUID, scores map[uuid.UUID]float64) (Simulation, error) {
	start := time.Now()
	cycle, scheme, err := s.Context(ctx, cycleID)
	if err != nil {
		return Simulation{}, err
	}
	if err := ValidateScores(scheme, scores); err != nil {
		return Simulation{}, err
	}
	return s.run(cycle, scheme, ModeWhatIf, scores, start), nil
}

func (s *Simulator) run(cycle model.CycleModel, scheme scoring.Scheme, mode string, scores map[uuid.UUID]float64, start time.Time) Simulation {
	weights := scoring.CheckWeights(scheme)
	if !weights.Reconciled {
		log.Printf("[WARN] bobot standar %s tidak rekonsiliasi: total=%.2f expected=%.2f",
			scheme.Code, weights.ActualTotal, weights.ExpectedTotal)
	}

	res := scoring.Simulate(scheme, scores)
	metrics.ObserveSimulation(mode, res.PredictedLevel, time.Since(start))

	return Simulation{
		CycleID: cycle.CycleID,
		LamID:   scheme.ID,
		LamCode: scheme.Code,
		Mode:    mode,
		Weights: weights,
		Result:  res,
	}
}

// ValidateScores checks caller-supplied values at the boundary, before the engine.
func ValidateScores(scheme scoring.Scheme, scores map[uuid.UUID]float64) error {
	known := scheme.IndicatorSet()
	for id, v := range scores {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownIndicator, id)
		}
		if err := ValidateValue(scheme, v); err != nil {
			return fmt.Errorf("indikator %s: %w", id, err)
		}
	}
	return nil
}

func ValidateValue(scheme scoring.Scheme, v float64) error {
	if v < scheme.MinScoreScale || v > scheme.MaxScoreScale {
		return fmt.Errorf("%w [%.2f, %.2f]: %.2f", ErrScoreOutOfRange, scheme.MinScoreScale, scheme.MaxScoreScale, v)
	}
	return nil
}
