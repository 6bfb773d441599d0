// file: internals/features/accreditation/scoring/simulation.go
package scoring

import (
	"math"

	"github.com/google/uuid"
)

// Simulate runs the full pipeline for one scheme snapshot and one score map.
// Input map tidak disentuh; indikator yang tidak ada di map bernilai 0.
// The level is predicted from the rounded total so the reported total and
// level always agree.
func Simulate(scheme Scheme, scores map[uuid.UUID]float64) Result {
	used := make(map[uuid.UUID]float64)
	scheme.EachIndicator(func(_ Standard, ind Indicator) {
		used[ind.ID] = scores[ind.ID]
	})

	standardScores := make([]StandardScore, 0, len(scheme.Standards))
	var total float64
	for _, std := range scheme.Standards {
		ss := ScoreStandard(std, used)
		total += ss.WeightedScore
		standardScores = append(standardScores, ss)
	}
	total = round2(total)

	return Result{
		IndicatorScores: used,
		StandardScores:  standardScores,
		TotalScore:      total,
		PredictedLevel:  NewLevelTable(scheme.Levels, scheme.FallbackLevel).Predict(total),
		GapAnalysis:     AnalyzeGaps(standardScores, scheme.MaxScoreScale),
	}
}

// SimulateFromRecords resolves persisted records first, then simulates.
func SimulateFromRecords(scheme Scheme, records []ScoreRecord) Result {
	return Simulate(scheme, ResolveScores(records))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
