// file: internals/features/accreditation/lams/model/standard_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StandardModel struct {
	StandardID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:standard_id" json:"standard_id"`
	StandardLamID  uuid.UUID `gorm:"type:uuid;not null;index;column:standard_lam_id" json:"standard_lam_id"`
	StandardCode   string    `gorm:"type:varchar(40);not null;column:standard_code" json:"standard_code"`
	StandardName   string    `gorm:"type:varchar(200);not null;column:standard_name" json:"standard_name"`
	StandardWeight float64   `gorm:"type:numeric(8,2);not null;column:standard_weight" json:"standard_weight"`
	StandardOrder  int       `gorm:"not null;default:0;column:standard_order" json:"standard_order"`

	StandardCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:standard_created_at" json:"standard_created_at"`
	StandardUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:standard_updated_at" json:"standard_updated_at"`
	StandardDeletedAt gorm.DeletedAt `gorm:"column:standard_deleted_at;index" json:"standard_deleted_at,omitempty"`
}

func (StandardModel) TableName() string { return "lam_standards" }

// ElementModel.ElementWeight disimpan apa adanya tapi TIDAK dipakai agregasi skor standar.
type ElementModel struct {
	ElementID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:element_id" json:"element_id"`
	ElementStandardID uuid.UUID `gorm:"type:uuid;not null;index;column:element_standard_id" json:"element_standard_id"`
	ElementCode       string    `gorm:"type:varchar(40);not null;column:element_code" json:"element_code"`
	ElementName       string    `gorm:"type:varchar(200);not null;column:element_name" json:"element_name"`
	ElementWeight     float64   `gorm:"type:numeric(8,2);not null;column:element_weight" json:"element_weight"`
	ElementOrder      int       `gorm:"not null;default:0;column:element_order" json:"element_order"`

	ElementCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:element_created_at" json:"element_created_at"`
	ElementDeletedAt gorm.DeletedAt `gorm:"column:element_deleted_at;index" json:"element_deleted_at,omitempty"`
}

func (ElementModel) TableName() string { return "lam_elements" }

type IndicatorModel struct {
	IndicatorID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:indicator_id" json:"indicator_id"`
	IndicatorElementID uuid.UUID `gorm:"type:uuid;not null;index;column:indicator_element_id" json:"indicator_element_id"`
	IndicatorCode      string    `gorm:"type:varchar(40);not null;column:indicator_code" json:"indicator_code"`
	IndicatorName      string    `gorm:"type:text;not null;column:indicator_name" json:"indicator_name"`
	IndicatorWeight    float64   `gorm:"type:numeric(8,4);not null;column:indicator_weight" json:"indicator_weight"`
	IndicatorOrder     int       `gorm:"not null;default:0;column:indicator_order" json:"indicator_order"`

	IndicatorCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:indicator_created_at" json:"indicator_created_at"`
	IndicatorDeletedAt gorm.DeletedAt `gorm:"column:indicator_deleted_at;index" json:"indicator_deleted_at,omitempty"`
}

func (IndicatorModel) TableName() string { return "lam_indicators" }
