// file: internals/features/accreditation/cycles/model/cycle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CycleStatus string

const (
	CycleStatusDraft  CycleStatus = "draft"
	CycleStatusActive CycleStatus = "active"
	CycleStatusClosed CycleStatus = "closed"
)

// CycleModel = satu siklus akreditasi satu program studi terhadap satu LAM.
type CycleModel struct {
	CycleID          uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cycle_id" json:"cycle_id"`
	CycleLamID       uuid.UUID   `gorm:"type:uuid;not null;index;column:cycle_lam_id" json:"cycle_lam_id"`
	CycleProgramName string      `gorm:"type:varchar(160);not null;column:cycle_program_name" json:"cycle_program_name"`
	CycleYear        int         `gorm:"not null;column:cycle_year" json:"cycle_year"`
	CycleStatus      CycleStatus `gorm:"type:varchar(16);not null;default:'draft';index;column:cycle_status" json:"cycle_status"`

	CycleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:cycle_created_at" json:"cycle_created_at"`
	CycleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:cycle_updated_at" json:"cycle_updated_at"`
	CycleDeletedAt gorm.DeletedAt `gorm:"column:cycle_deleted_at;index" json:"cycle_deleted_at,omitempty"`
}

func (CycleModel) TableName() string { return "accreditation_cycles" }

// IndicatorScoreModel: fakta immutable (insert-only). Re-submit = baris baru.
type IndicatorScoreModel struct {
	IndicatorScoreID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:indicator_score_id" json:"indicator_score_id"`
	IndicatorScoreCycleID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_score_cycle_indicator;column:indicator_score_cycle_id" json:"indicator_score_cycle_id"`
	IndicatorScoreIndicatorID uuid.UUID  `gorm:"type:uuid;not null;index:idx_score_cycle_indicator;column:indicator_score_indicator_id" json:"indicator_score_indicator_id"`
	IndicatorScoreValue       float64    `gorm:"type:numeric(6,2);not null;column:indicator_score_value" json:"indicator_score_value"`
	IndicatorScoreSource      string     `gorm:"type:varchar(32);not null;column:indicator_score_source" json:"indicator_score_source"`
	IndicatorScoreRecordedAt  time.Time  `gorm:"type:timestamptz;not null;column:indicator_score_recorded_at" json:"indicator_score_recorded_at"`
	IndicatorScoreRecordedBy  *uuid.UUID `gorm:"type:uuid;column:indicator_score_recorded_by" json:"indicator_score_recorded_by,omitempty"`
	IndicatorScoreNote        *string    `gorm:"type:text;column:indicator_score_note" json:"indicator_score_note,omitempty"`

	IndicatorScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:indicator_score_created_at" json:"indicator_score_created_at"`
}

func (IndicatorScoreModel) TableName() string { return "indicator_scores" }

const (
	SnapshotTriggerManual = "manual"
	SnapshotTriggerCron   = "cron"
)

// SimulationSnapshotModel menyimpan salinan hasil simulasi untuk audit/laporan.
type SimulationSnapshotModel struct {
	SnapshotID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:snapshot_id" json:"snapshot_id"`
	SnapshotCycleID        uuid.UUID      `gorm:"type:uuid;not null;index;column:snapshot_cycle_id" json:"snapshot_cycle_id"`
	SnapshotLamID          uuid.UUID      `gorm:"type:uuid;not null;column:snapshot_lam_id" json:"snapshot_lam_id"`
	SnapshotTotalScore     float64        `gorm:"type:numeric(10,2);not null;column:snapshot_total_score" json:"snapshot_total_score"`
	SnapshotPredictedLevel string         `gorm:"type:varchar(80);not null;column:snapshot_predicted_level" json:"snapshot_predicted_level"`
	SnapshotTrigger        string         `gorm:"type:varchar(16);not null;column:snapshot_trigger" json:"snapshot_trigger"`
	SnapshotResult         datatypes.JSON `gorm:"type:jsonb;not null;column:snapshot_result" json:"snapshot_result"`

	SnapshotCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:snapshot_created_at" json:"snapshot_created_at"`
}

func (SimulationSnapshotModel) TableName() string { return "simulation_snapshots" }
