// file: internals/features/accreditation/scoring/standard.go
package scoring

import "github.com/google/uuid"

// CalculateStandardScore = Σ(score × bobot indikator) / Σ(bobot indikator),
// diratakan lintas semua elemen. Indikator tanpa skor dihitung 0.
// Total bobot 0 (mis. standar tanpa indikator) → skor 0.
func CalculateStandardScore(std Standard, scores map[uuid.UUID]float64) float64 {
	var weighted, totalWeight float64
	for _, el := range std.Elements {
		for _, ind := range el.Indicators {
			weighted += scores[ind.ID] * ind.Weight
			totalWeight += ind.Weight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

// ScoreStandard wraps CalculateStandardScore with the standard's weighted contribution.
func ScoreStandard(std Standard, scores map[uuid.UUID]float64) StandardScore {
	score := CalculateStandardScore(std, scores)
	return StandardScore{
		StandardID:    std.ID,
		Code:          std.Code,
		Name:          std.Name,
		Score:         score,
		Weight:        std.Weight,
		WeightedScore: score * std.Weight,
	}
}
