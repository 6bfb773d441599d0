// file: internals/features/accreditation/lams/dto/lam_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"akreditasi_backend/internals/features/accreditation/lams/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

/* ==============================
   REQUESTS
============================== */

type LevelItem struct {
	LevelName      string  `json:"level_name" validate:"required,max=80"`
	LevelThreshold float64 `json:"level_threshold" validate:"gte=0"`
}

// PUT /lams/:lam_id/levels: ganti seluruh tabel ambang (urutan array = urutan deklarasi)
type ReplaceLevelsRequest struct {
	Levels []LevelItem `json:"levels" validate:"required,min=1,dive"`
}

func (r ReplaceLevelsRequest) Normalize() ReplaceLevelsRequest {
	out := make([]LevelItem, len(r.Levels))
	for i, l := range r.Levels {
		l.LevelName = strings.TrimSpace(l.LevelName)
		out[i] = l
	}
	r.Levels = out
	return r
}

// DuplicateName returns the first level name declared twice (case-insensitive).
func (r ReplaceLevelsRequest) DuplicateName() (string, bool) {
	seen := make(map[string]struct{}, len(r.Levels))
	for _, l := range r.Levels {
		k := strings.ToLower(l.LevelName)
		if _, ok := seen[k]; ok {
			return l.LevelName, true
		}
		seen[k] = struct{}{}
	}
	return "", false
}

func (r ReplaceLevelsRequest) ToModels() []model.LamLevelModel {
	out := make([]model.LamLevelModel, 0, len(r.Levels))
	for i, l := range r.Levels {
		out = append(out, model.LamLevelModel{
			LamLevelName:      l.LevelName,
			LamLevelThreshold: l.LevelThreshold,
			LamLevelOrder:     i,
		})
	}
	return out
}

/* ==============================
   RESPONSES
============================== */

type LamResponse struct {
	LamID            uuid.UUID `json:"lam_id"`
	LamCode          string    `json:"lam_code"`
	LamSlug          string    `json:"lam_slug"`
	LamName          string    `json:"lam_name"`
	LamMinScoreScale float64   `json:"lam_min_score_scale"`
	LamMaxScoreScale float64   `json:"lam_max_score_scale"`
	LamTotalWeight   float64   `json:"lam_total_weight"`
	LamFallbackLevel string    `json:"lam_fallback_level"`
	LamCreatedAt     time.Time `json:"lam_created_at"`
	LamUpdatedAt     time.Time `json:"lam_updated_at"`
}

type LamDetailResponse struct {
	LamResponse
	// urutan kanonik (threshold desc), sama dengan yang dipakai prediksi
	Levels    []scoring.Level    `json:"levels"`
	Standards []scoring.Standard `json:"standards"`
}

type LevelsResponse struct {
	LamID    uuid.UUID       `json:"lam_id"`
	Levels   []scoring.Level `json:"levels"`
	Fallback string          `json:"fallback_level"`
}

/* ==============================
   MAPPERS
============================== */

func FromModel(m model.LamModel) LamResponse {
	return LamResponse{
		LamID:            m.LamID,
		LamCode:          m.LamCode,
		LamSlug:          m.LamSlug,
		LamName:          m.LamName,
		LamMinScoreScale: m.LamMinScoreScale,
		LamMaxScoreScale: m.LamMaxScoreScale,
		LamTotalWeight:   m.LamTotalWeight,
		LamFallbackLevel: m.LamFallbackLevel,
		LamCreatedAt:     m.LamCreatedAt,
		LamUpdatedAt:     m.LamUpdatedAt,
	}
}

func FromModels(items []model.LamModel) []LamResponse {
	out := make([]LamResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromModel(it))
	}
	return out
}

func NewLamDetailResponse(m model.LamModel, scheme scoring.Scheme) LamDetailResponse {
	return LamDetailResponse{
		LamResponse: FromModel(m),
		Levels:      scoring.NewLevelTable(scheme.Levels, scheme.FallbackLevel).Levels(),
		Standards:   scheme.Standards,
	}
}

func NewLevelsResponse(lamID uuid.UUID, levels []model.LamLevelModel, fallback string) LevelsResponse {
	raw := make([]scoring.Level, 0, len(levels))
	for _, l := range levels {
		raw = append(raw, scoring.Level{Name: l.LamLevelName, Threshold: l.LamLevelThreshold})
	}
	table := scoring.NewLevelTable(raw, fallback)
	return LevelsResponse{LamID: lamID, Levels: table.Levels(), Fallback: table.Fallback()}
}

func (r ReplaceLevelsRequest) String() string {
	parts := make([]string, 0, len(r.Levels))
	for _, l := range r.Levels {
		parts = append(parts, fmt.Sprintf("%s≥%.2f", l.LevelName, l.LevelThreshold))
	}
	return strings.Join(parts, ", ")
}
