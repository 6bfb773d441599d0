// file: internals/features/accreditation/cycles/repository/cycle_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

// Store membungkus *gorm.DB untuk siklus, skor indikator dan snapshot.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

/* ====================== CYCLE ====================== */

func (s *Store) FindCycle(ctx context.Context, cycleID uuid.UUID) (model.CycleModel, error) {
	var row model.CycleModel
	err := s.DB.WithContext(ctx).Where("cycle_id = ?", cycleID).First(&row).Error
	return row, err
}

func (s *Store) ListActiveCycleIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&model.CycleModel{}).
		Where("cycle_status = ?", model.CycleStatusActive).
		Order("cycle_id ASC").
		Pluck("cycle_id", &ids).Error
	return ids, err
}

/* ====================== SCORES ====================== */

// ListScoreRecords returns every raw record of the cycle in insertion order.
func (s *Store) ListScoreRecords(ctx context.Context, cycleID uuid.UUID) ([]scoring.ScoreRecord, error) {
	var rows []model.IndicatorScoreModel
	if err := s.DB.WithContext(ctx).
		Where("indicator_score_cycle_id = ?", cycleID).
		Order("indicator_score_created_at ASC, indicator_score_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]scoring.ScoreRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToScoreRecord(r))
	}
	return out, nil
}

func (s *Store) CreateScore(ctx context.Context, row *model.IndicatorScoreModel) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func ToScoreRecord(m model.IndicatorScoreModel) scoring.ScoreRecord {
	return scoring.ScoreRecord{
		IndicatorID: m.IndicatorScoreIndicatorID,
		Value:       m.IndicatorScoreValue,
		Source:      scoring.Source(m.IndicatorScoreSource),
		RecordedAt:  m.IndicatorScoreRecordedAt,
	}
}

/* ====================== SNAPSHOTS ====================== */

func (s *Store) CreateSnapshot(ctx context.Context, row *model.SimulationSnapshotModel) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *Store) ListSnapshots(ctx context.Context, cycleID uuid.UUID, offset, limit int) ([]model.SimulationSnapshotModel, int64, error) {
	var (
		rows  []model.SimulationSnapshotModel
		total int64
	)
	base := func() *gorm.DB {
		return s.DB.WithContext(ctx).Model(&model.SimulationSnapshotModel{}).Where("snapshot_cycle_id = ?", cycleID)
	}
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := base().Order("snapshot_created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
