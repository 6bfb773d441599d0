// file: internals/features/accreditation/cycles/service/snapshot_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/metrics"
)

type SnapshotStore interface {
	CreateSnapshot(ctx context.Context, row *model.SimulationSnapshotModel) error
}

// Snapshotter menyimpan hasil simulasi dari record tersimpan sebagai jejak audit.
type Snapshotter struct {
	sim   *Simulator
	store SnapshotStore
	pub   EventPublisher
}

func NewSnapshotter(sim *Simulator, store SnapshotStore, pub EventPublisher) *Snapshotter {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Snapshotter{sim: sim, store: store, pub: pub}
}

func (s *Snapshotter) Take(ctx context.Context, cycleID uuid.UUID, trigger string) (row model.SimulationSnapshotModel, err error) {
	defer func() { metrics.ObserveSnapshot(trigger, err) }()

	simulation, err := s.sim.SimulateFromRecords(ctx, cycleID)
	if err != nil {
		return model.SimulationSnapshotModel{}, err
	}

	payload, err := encodeSimulation(simulation)
	if err != nil {
		return model.SimulationSnapshotModel{}, fmt.Errorf("encode simulation: %w", err)
	}

	row = model.SimulationSnapshotModel{
		SnapshotID:             uuid.New(),
		SnapshotCycleID:        simulation.CycleID,
		SnapshotLamID:          simulation.LamID,
		SnapshotTotalScore:     simulation.Result.TotalScore,
		SnapshotPredictedLevel: simulation.Result.PredictedLevel,
		SnapshotTrigger:        trigger,
		SnapshotResult:         datatypes.JSON(payload),
	}
	if err := s.store.CreateSnapshot(ctx, &row); err != nil {
		return model.SimulationSnapshotModel{}, err
	}

	ev := SnapshotEvent{
		Type:           EventSnapshotCreated,
		SnapshotID:     row.SnapshotID,
		CycleID:        row.SnapshotCycleID,
		LamID:          row.SnapshotLamID,
		TotalScore:     row.SnapshotTotalScore,
		PredictedLevel: row.SnapshotPredictedLevel,
		Trigger:        trigger,
		CreatedAt:      row.SnapshotCreatedAt,
	}
	if perr := s.pub.PublishSnapshot(ctx, ev); perr != nil {
		// snapshot sudah tersimpan; event gagal tidak membatalkan
		log.Printf("[WARN] publish snapshot %s gagal: %v", row.SnapshotID, perr)
	}
	return row, nil
}

// encodeSimulation: ConfigStd mengurutkan key map → payload identik untuk input identik.
func encodeSimulation(sim Simulation) ([]byte, error) {
	return sonic.ConfigStd.Marshal(sim.Document())
}
