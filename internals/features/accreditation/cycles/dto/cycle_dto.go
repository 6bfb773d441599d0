// file: internals/features/accreditation/cycles/dto/cycle_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/cycles/service"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

/* ==============================
   REQUESTS
============================== */

// POST /cycles/:cycle_id/simulation: key = indicator_id
type WhatIfRequest struct {
	Scores map[string]float64 `json:"scores" validate:"required"`
}

// ParseScores mengubah key string menjadi uuid; key invalid dikembalikan sebagai error.
func (r WhatIfRequest) ParseScores() (map[uuid.UUID]float64, error) {
	out := make(map[uuid.UUID]float64, len(r.Scores))
	for k, v := range r.Scores {
		id, err := uuid.Parse(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("indicator_id tidak valid: %q", k)
		}
		out[id] = v
	}
	return out, nil
}

// POST /cycles/:cycle_id/scores
type CreateScoreRequest struct {
	IndicatorID uuid.UUID  `json:"indicator_id" validate:"required"`
	Value       *float64   `json:"value" validate:"required"`
	Source      string     `json:"source" validate:"required,oneof=coordinator assessor_internal assessor_external"`
	RecordedAt  *time.Time `json:"recorded_at,omitempty"`
	Note        *string    `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r CreateScoreRequest) Normalize() CreateScoreRequest {
	r.Source = strings.ToLower(strings.TrimSpace(r.Source))
	if r.Note != nil {
		n := strings.TrimSpace(*r.Note)
		if n == "" {
			r.Note = nil
		} else {
			r.Note = &n
		}
	}
	return r
}

func (r CreateScoreRequest) ToInput(recordedBy *uuid.UUID) service.ScoreInput {
	in := service.ScoreInput{
		IndicatorID: r.IndicatorID,
		Source:      scoring.Source(r.Source),
		RecordedBy:  recordedBy,
		Note:        r.Note,
	}
	if r.Value != nil {
		in.Value = *r.Value
	}
	if r.RecordedAt != nil {
		in.RecordedAt = *r.RecordedAt
	}
	return in
}

/* ==============================
   RESPONSES
============================== */

type ScoreResponse struct {
	IndicatorScoreID          uuid.UUID  `json:"indicator_score_id"`
	IndicatorScoreCycleID     uuid.UUID  `json:"indicator_score_cycle_id"`
	IndicatorScoreIndicatorID uuid.UUID  `json:"indicator_score_indicator_id"`
	IndicatorScoreValue       float64    `json:"indicator_score_value"`
	IndicatorScoreSource      string     `json:"indicator_score_source"`
	IndicatorScoreRecordedAt  time.Time  `json:"indicator_score_recorded_at"`
	IndicatorScoreRecordedBy  *uuid.UUID `json:"indicator_score_recorded_by,omitempty"`
	IndicatorScoreNote        *string    `json:"indicator_score_note,omitempty"`
}

func FromScoreModel(m model.IndicatorScoreModel) ScoreResponse {
	return ScoreResponse{
		IndicatorScoreID:          m.IndicatorScoreID,
		IndicatorScoreCycleID:     m.IndicatorScoreCycleID,
		IndicatorScoreIndicatorID: m.IndicatorScoreIndicatorID,
		IndicatorScoreValue:       m.IndicatorScoreValue,
		IndicatorScoreSource:      m.IndicatorScoreSource,
		IndicatorScoreRecordedAt:  m.IndicatorScoreRecordedAt,
		IndicatorScoreRecordedBy:  m.IndicatorScoreRecordedBy,
		IndicatorScoreNote:        m.IndicatorScoreNote,
	}
}

// SnapshotResponse: ringkasan; payload lengkap hanya saat include_result=true
type SnapshotResponse struct {
	SnapshotID             uuid.UUID `json:"snapshot_id"`
	SnapshotCycleID        uuid.UUID `json:"snapshot_cycle_id"`
	SnapshotLamID          uuid.UUID `json:"snapshot_lam_id"`
	SnapshotTotalScore     float64   `json:"snapshot_total_score"`
	SnapshotPredictedLevel string    `json:"snapshot_predicted_level"`
	SnapshotTrigger        string    `json:"snapshot_trigger"`
	SnapshotCreatedAt      time.Time `json:"snapshot_created_at"`
	SnapshotResult         any       `json:"snapshot_result,omitempty"`
}

func FromSnapshotModel(m model.SimulationSnapshotModel, includeResult bool) SnapshotResponse {
	out := SnapshotResponse{
		SnapshotID:             m.SnapshotID,
		SnapshotCycleID:        m.SnapshotCycleID,
		SnapshotLamID:          m.SnapshotLamID,
		SnapshotTotalScore:     m.SnapshotTotalScore,
		SnapshotPredictedLevel: m.SnapshotPredictedLevel,
		SnapshotTrigger:        m.SnapshotTrigger,
		SnapshotCreatedAt:      m.SnapshotCreatedAt,
	}
	if includeResult && len(m.SnapshotResult) > 0 {
		out.SnapshotResult = m.SnapshotResult
	}
	return out
}

func FromSnapshotModels(rows []model.SimulationSnapshotModel, includeResult bool) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSnapshotModel(r, includeResult))
	}
	return out
}
