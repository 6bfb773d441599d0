package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

type fakeStore struct {
	mu        sync.Mutex
	cycles    map[uuid.UUID]model.CycleModel
	records   map[uuid.UUID][]scoring.ScoreRecord
	scores    []model.IndicatorScoreModel
	snapshots []model.SimulationSnapshotModel
	failWrite error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cycles:  map[uuid.UUID]model.CycleModel{},
		records: map[uuid.UUID][]scoring.ScoreRecord{},
	}
}

func (f *fakeStore) FindCycle(_ context.Context, id uuid.UUID) (model.CycleModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cycles[id]
	if !ok {
		return model.CycleModel{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeStore) ListScoreRecords(_ context.Context, id uuid.UUID) ([]scoring.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]scoring.ScoreRecord(nil), f.records[id]...), nil
}

func (f *fakeStore) CreateScore(_ context.Context, row *model.IndicatorScoreModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return f.failWrite
	}
	f.scores = append(f.scores, *row)
	return nil
}

func (f *fakeStore) CreateSnapshot(_ context.Context, row *model.SimulationSnapshotModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return f.failWrite
	}
	f.snapshots = append(f.snapshots, *row)
	return nil
}

type fakeLoader struct {
	schemes map[uuid.UUID]scoring.Scheme
}

func (f fakeLoader) LoadScheme(_ context.Context, lamID uuid.UUID) (scoring.Scheme, error) {
	s, ok := f.schemes[lamID]
	if !ok {
		return scoring.Scheme{}, errors.New("lam not found")
	}
	return s, nil
}

type fakePublisher struct {
	events []SnapshotEvent
	err    error
}

func (p *fakePublisher) PublishSnapshot(_ context.Context, ev SnapshotEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type fakeWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fixture struct {
	store   *fakeStore
	sim     *Simulator
	cycleID uuid.UUID
	a1      uuid.UUID
	b1      uuid.UUID
	b2      uuid.UUID
}

// newFixture: skema dua standar (60/40) skala 0..4, satu siklus aktif.
func newFixture() fixture {
	a1, b1, b2 := uuid.New(), uuid.New(), uuid.New()
	lamID := uuid.New()
	scheme := scoring.Scheme{
		ID: lamID, Code: "LAM-TEST", MaxScoreScale: 4, TotalWeight: 100,
		Levels: []scoring.Level{
			{Name: "Unggul", Threshold: 350},
			{Name: "BaikSekali", Threshold: 300},
			{Name: "Baik", Threshold: 250},
		},
		Standards: []scoring.Standard{
			{ID: uuid.New(), Code: "A", Weight: 60, Elements: []scoring.Element{{Indicators: []scoring.Indicator{{ID: a1, Weight: 1}}}}},
			{ID: uuid.New(), Code: "B", Weight: 40, Elements: []scoring.Element{{Indicators: []scoring.Indicator{{ID: b1, Weight: 1}, {ID: b2, Weight: 1}}}}},
		},
	}
	store := newFakeStore()
	cycleID := uuid.New()
	store.cycles[cycleID] = model.CycleModel{CycleID: cycleID, CycleLamID: lamID, CycleStatus: model.CycleStatusActive}

	sim := NewSimulator(store, fakeLoader{schemes: map[uuid.UUID]scoring.Scheme{lamID: scheme}})
	return fixture{store: store, sim: sim, cycleID: cycleID, a1: a1, b1: b1, b2: b2}
}
