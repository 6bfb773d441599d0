package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

func TestSnapshotterPersistsAndPublishes(t *testing.T) {
	fx := newFixture()
	ts := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	fx.store.records[fx.cycleID] = []scoring.ScoreRecord{
		{IndicatorID: fx.a1, Value: 3.2, Source: scoring.SourceAssessorExternal, RecordedAt: ts},
		{IndicatorID: fx.b1, Value: 2.0, Source: scoring.SourceAssessorExternal, RecordedAt: ts},
		{IndicatorID: fx.b2, Value: 4.0, Source: scoring.SourceAssessorExternal, RecordedAt: ts},
	}
	pub := &fakePublisher{}
	snap := NewSnapshotter(fx.sim, fx.store, pub)

	row, err := snap.Take(context.Background(), fx.cycleID, model.SnapshotTriggerManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.SnapshotTotalScore != 312 || row.SnapshotPredictedLevel != "BaikSekali" {
		t.Fatalf("unexpected snapshot: %+v", row)
	}
	if len(fx.store.snapshots) != 1 {
		t.Fatalf("snapshot not stored")
	}

	var decoded Simulation
	if err := json.Unmarshal(row.SnapshotResult, &decoded); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if decoded.Result.PredictedLevel != "BaikSekali" || len(decoded.Result.GapAnalysis) != 2 {
		t.Fatalf("payload mismatch: %+v", decoded.Result)
	}
	if decoded.CycleID != fx.cycleID || decoded.Result.IndicatorScores[fx.a1] != 3.2 {
		t.Fatalf("indicator scores lost in payload: %+v", decoded.Result.IndicatorScores)
	}

	if len(pub.events) != 1 || pub.events[0].Type != EventSnapshotCreated || pub.events[0].CycleID != fx.cycleID {
		t.Fatalf("unexpected events: %+v", pub.events)
	}
}

func TestEncodeSimulationIsDeterministic(t *testing.T) {
	fx := newFixture()
	ts := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	fx.store.records[fx.cycleID] = []scoring.ScoreRecord{
		{IndicatorID: fx.a1, Value: 3.2, Source: scoring.SourceAssessorExternal, RecordedAt: ts},
		{IndicatorID: fx.b1, Value: 2.0, Source: scoring.SourceCoordinator, RecordedAt: ts},
	}
	sim, err := fx.sim.SimulateFromRecords(context.Background(), fx.cycleID)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	first, err := encodeSimulation(sim)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := encodeSimulation(sim)
		if err != nil {
			t.Fatalf("encode #%d: %v", i, err)
		}
		if string(again) != string(first) {
			t.Fatalf("payload not deterministic:\n%s\n%s", first, again)
		}
	}

	var decoded Simulation
	if err := json.Unmarshal(first, &decoded); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if len(decoded.Result.IndicatorScores) != len(sim.Result.IndicatorScores) {
		t.Fatalf("expected %d indicator scores, got %+v", len(sim.Result.IndicatorScores), decoded.Result.IndicatorScores)
	}
	for id, v := range sim.Result.IndicatorScores {
		if decoded.Result.IndicatorScores[id] != v {
			t.Fatalf("indicator %s: expected %v, got %v", id, v, decoded.Result.IndicatorScores[id])
		}
	}
}

func TestSnapshotterPublishFailureDoesNotFail(t *testing.T) {
	fx := newFixture()
	snap := NewSnapshotter(fx.sim, fx.store, &fakePublisher{err: errors.New("broker down")})

	if _, err := snap.Take(context.Background(), fx.cycleID, model.SnapshotTriggerCron); err != nil {
		t.Fatalf("publish failure must not fail snapshot: %v", err)
	}
	if len(fx.store.snapshots) != 1 {
		t.Fatalf("snapshot not stored")
	}
}

func TestSnapshotterStoreFailure(t *testing.T) {
	fx := newFixture()
	fx.store.failWrite = errors.New("insert failed")
	pub := &fakePublisher{}
	snap := NewSnapshotter(fx.sim, fx.store, pub)

	if _, err := snap.Take(context.Background(), fx.cycleID, model.SnapshotTriggerManual); err == nil {
		t.Fatalf("expected store error")
	}
	if len(pub.events) != 0 {
		t.Fatalf("no event expected when store fails")
	}
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{w: w}
	cycleID := uuid.New()

	if err := p.PublishSnapshot(context.Background(), SnapshotEvent{CycleID: cycleID, PredictedLevel: "Unggul"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.msgs) != 1 || string(w.msgs[0].Key) != cycleID.String() {
		t.Fatalf("unexpected messages: %+v", w.msgs)
	}
	var ev SnapshotEvent
	if err := json.Unmarshal(w.msgs[0].Value, &ev); err != nil || ev.Type != EventSnapshotCreated {
		t.Fatalf("unexpected payload %s (%v)", w.msgs[0].Value, err)
	}
	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("close not forwarded")
	}
}
