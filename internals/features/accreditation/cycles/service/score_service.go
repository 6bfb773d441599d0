// file: internals/features/accreditation/cycles/service/score_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

type ScoreWriter interface {
	CreateScore(ctx context.Context, row *model.IndicatorScoreModel) error
}

type ScoreInput struct {
	IndicatorID uuid.UUID
	Value       float64
	Source      scoring.Source
	RecordedAt  time.Time
	RecordedBy  *uuid.UUID
	Note        *string
}

// Recorder menambah record skor baru. Record lama tidak pernah diubah.
type Recorder struct {
	sim    *Simulator
	writer ScoreWriter
	now    func() time.Time
}

func NewRecorder(sim *Simulator, writer ScoreWriter) *Recorder {
	return &Recorder{sim: sim, writer: writer, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, cycleID uuid.UUID, in ScoreInput) (model.IndicatorScoreModel, error) {
	if !in.Source.Valid() {
		return model.IndicatorScoreModel{}, fmt.Errorf("%w: %q", ErrInvalidSource, in.Source)
	}
	cycle, scheme, err := r.sim.Context(ctx, cycleID)
	if err != nil {
		return model.IndicatorScoreModel{}, err
	}
	if cycle.CycleStatus == model.CycleStatusClosed {
		return model.IndicatorScoreModel{}, ErrCycleClosed
	}
	if _, ok := scheme.IndicatorSet()[in.IndicatorID]; !ok {
		return model.IndicatorScoreModel{}, fmt.Errorf("%w: %s", ErrUnknownIndicator, in.IndicatorID)
	}
	if err := ValidateValue(scheme, in.Value); err != nil {
		return model.IndicatorScoreModel{}, err
	}

	recordedAt := in.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = r.now()
	}
	row := model.IndicatorScoreModel{
		IndicatorScoreID:          uuid.New(),
		IndicatorScoreCycleID:     cycleID,
		IndicatorScoreIndicatorID: in.IndicatorID,
		IndicatorScoreValue:       in.Value,
		IndicatorScoreSource:      string(in.Source),
		IndicatorScoreRecordedAt:  recordedAt.UTC(),
		IndicatorScoreRecordedBy:  in.RecordedBy,
		IndicatorScoreNote:        in.Note,
	}
	if err := r.writer.CreateScore(ctx, &row); err != nil {
		return model.IndicatorScoreModel{}, err
	}
	return row, nil
}
