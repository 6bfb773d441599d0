// file: internals/features/accreditation/scoring/level.go
package scoring

import "sort"

// NotAccredited dipakai kalau skema tidak punya fallback sendiri.
const NotAccredited = "Tidak Terakreditasi"

// LevelTable is a threshold table sorted by threshold descending.
// Equal thresholds keep their declaration order, so the earlier-declared level wins.
type LevelTable struct {
	levels   []Level
	fallback string
}

func NewLevelTable(levels []Level, fallback string) LevelTable {
	sorted := make([]Level, len(levels))
	copy(sorted, levels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})
	if fallback == "" {
		fallback = NotAccredited
	}
	return LevelTable{levels: sorted, fallback: fallback}
}

// Levels returns a copy in canonical (descending) order.
func (t LevelTable) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

func (t LevelTable) Fallback() string { return t.fallback }

// Predict returns the first level whose threshold ≤ total, else the fallback.
func (t LevelTable) Predict(total float64) string {
	for _, l := range t.levels {
		if l.Threshold <= total {
			return l.Name
		}
	}
	return t.fallback
}

func PredictLevel(total float64, levels []Level, fallback string) string {
	return NewLevelTable(levels, fallback).Predict(total)
}
