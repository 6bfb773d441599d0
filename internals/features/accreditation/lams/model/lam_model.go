// file: internals/features/accreditation/lams/model/lam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LamModel = lembaga akreditasi mandiri (skema penilaian).
type LamModel struct {
	LamID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lam_id" json:"lam_id"`
	LamCode          string    `gorm:"type:varchar(40);not null;uniqueIndex;column:lam_code" json:"lam_code"`
	LamSlug          string    `gorm:"type:varchar(100);not null;uniqueIndex;column:lam_slug" json:"lam_slug"`
	LamName          string    `gorm:"type:varchar(160);not null;column:lam_name" json:"lam_name"`
	LamMinScoreScale float64   `gorm:"type:numeric(6,2);not null;column:lam_min_score_scale" json:"lam_min_score_scale"`
	LamMaxScoreScale float64   `gorm:"type:numeric(6,2);not null;column:lam_max_score_scale" json:"lam_max_score_scale"`
	LamTotalWeight   float64   `gorm:"type:numeric(8,2);not null;column:lam_total_weight" json:"lam_total_weight"`
	LamFallbackLevel string    `gorm:"type:varchar(80);not null;default:'Tidak Terakreditasi';column:lam_fallback_level" json:"lam_fallback_level"`

	LamCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:lam_created_at" json:"lam_created_at"`
	LamUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:lam_updated_at" json:"lam_updated_at"`
	LamDeletedAt gorm.DeletedAt `gorm:"column:lam_deleted_at;index" json:"lam_deleted_at,omitempty"`
}

func (LamModel) TableName() string { return "lams" }

// LamLevelModel: satu baris tabel ambang peringkat. Urutan deklarasi = lam_level_order.
type LamLevelModel struct {
	LamLevelID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lam_level_id" json:"lam_level_id"`
	LamLevelLamID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_lam_level_name;column:lam_level_lam_id" json:"lam_level_lam_id"`
	LamLevelName      string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_lam_level_name;column:lam_level_name" json:"lam_level_name"`
	LamLevelThreshold float64   `gorm:"type:numeric(8,2);not null;column:lam_level_threshold" json:"lam_level_threshold"`
	LamLevelOrder     int       `gorm:"not null;default:0;column:lam_level_order" json:"lam_level_order"`

	LamLevelCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:lam_level_created_at" json:"lam_level_created_at"`
}

func (LamLevelModel) TableName() string { return "lam_levels" }
