// file: internals/features/accreditation/scoring/types.go
package scoring

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Scheme tree (snapshot read-only dari data layer)
========================================================= */

type Indicator struct {
	ID     uuid.UUID `json:"indicator_id"`
	Code   string    `json:"indicator_code"`
	Name   string    `json:"indicator_name"`
	Weight float64   `json:"indicator_weight"`
}

// Element hanya pengelompokan. Bobotnya (kalau ada di DB) tidak ikut agregasi.
type Element struct {
	ID         uuid.UUID   `json:"element_id"`
	Code       string      `json:"element_code"`
	Name       string      `json:"element_name"`
	Indicators []Indicator `json:"indicators"`
}

type Standard struct {
	ID       uuid.UUID `json:"standard_id"`
	Code     string    `json:"standard_code"`
	Name     string    `json:"standard_name"`
	Weight   float64   `json:"standard_weight"`
	Elements []Element `json:"elements"`
}

type Level struct {
	Name      string  `json:"level_name"`
	Threshold float64 `json:"level_threshold"`
}

// Scheme = satu LAM lengkap dengan skala, tabel level dan pohon standar.
// Levels disimpan sesuai urutan deklarasi; urutan itu dipakai sebagai tie-break.
type Scheme struct {
	ID            uuid.UUID  `json:"lam_id"`
	Code          string     `json:"lam_code"`
	Name          string     `json:"lam_name"`
	MinScoreScale float64    `json:"min_score_scale"`
	MaxScoreScale float64    `json:"max_score_scale"`
	TotalWeight   float64    `json:"total_weight"`
	FallbackLevel string     `json:"fallback_level"`
	Levels        []Level    `json:"levels"`
	Standards     []Standard `json:"standards"`
}

// EachIndicator iterates indicators in declaration order (standard → element → indicator).
func (s Scheme) EachIndicator(fn func(std Standard, ind Indicator)) {
	for _, std := range s.Standards {
		for _, el := range std.Elements {
			for _, ind := range el.Indicators {
				fn(std, ind)
			}
		}
	}
}

// IndicatorSet returns the ids of every indicator in the tree.
func (s Scheme) IndicatorSet() map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{})
	s.EachIndicator(func(_ Standard, ind Indicator) {
		out[ind.ID] = struct{}{}
	})
	return out
}

/* =========================================================
   Raw score records
========================================================= */

type Source string

const (
	SourceCoordinator      Source = "coordinator"
	SourceAssessorInternal Source = "assessor_internal"
	SourceAssessorExternal Source = "assessor_external"
)

// Priority: external > internal > coordinator; sumber tak dikenal = 0.
func (s Source) Priority() int {
	switch s {
	case SourceAssessorExternal:
		return 3
	case SourceAssessorInternal:
		return 2
	case SourceCoordinator:
		return 1
	default:
		return 0
	}
}

func (s Source) Valid() bool { return s.Priority() > 0 }

type ScoreRecord struct {
	IndicatorID uuid.UUID `json:"indicator_id"`
	Value       float64   `json:"value"`
	Source      Source    `json:"source"`
	RecordedAt  time.Time `json:"recorded_at"`
}

/* =========================================================
   Output
========================================================= */

type StandardScore struct {
	StandardID    uuid.UUID `json:"standard_id"`
	Code          string    `json:"standard_code"`
	Name          string    `json:"standard_name"`
	Score         float64   `json:"score"`
	Weight        float64   `json:"weight"`
	WeightedScore float64   `json:"weighted_score"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Gap struct {
	StandardID   uuid.UUID `json:"standard_id"`
	Code         string    `json:"standard_code"`
	Name         string    `json:"standard_name"`
	CurrentScore float64   `json:"current_score"`
	MaxScore     float64   `json:"max_score"`
	Gap          float64   `json:"gap"`
	Priority     Priority  `json:"priority"`
}

// Result selalu baru per run; tidak pernah dimutasi setelah dikembalikan.
type Result struct {
	IndicatorScores map[uuid.UUID]float64 `json:"indicator_scores"`
	StandardScores  []StandardScore       `json:"standard_scores"`
	TotalScore      float64               `json:"total_score"`
	PredictedLevel  string                `json:"predicted_level"`
	GapAnalysis     []Gap                 `json:"gap_analysis"`
}

// ResultDocument = Result dengan key indikator string (uuid).
// Encoder yang mengurutkan key map (sonic.ConfigStd) hanya menerima key string.
type ResultDocument struct {
	IndicatorScores map[string]float64 `json:"indicator_scores"`
	StandardScores  []StandardScore    `json:"standard_scores"`
	TotalScore      float64            `json:"total_score"`
	PredictedLevel  string             `json:"predicted_level"`
	GapAnalysis     []Gap              `json:"gap_analysis"`
}

func (r Result) Document() ResultDocument {
	scores := make(map[string]float64, len(r.IndicatorScores))
	for id, v := range r.IndicatorScores {
		scores[id.String()] = v
	}
	return ResultDocument{
		IndicatorScores: scores,
		StandardScores:  r.StandardScores,
		TotalScore:      r.TotalScore,
		PredictedLevel:  r.PredictedLevel,
		GapAnalysis:     r.GapAnalysis,
	}
}
