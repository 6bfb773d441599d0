// file: internals/features/accreditation/scoring/gap.go
package scoring

import "sort"

// Ambang gap (strict lower bound di tiap kelas).
const (
	GapSignificanceThreshold = 0.5
	GapMediumThreshold       = 1.0
	GapHighThreshold         = 1.5
)

// ClassifyGap: >1.5 high, (1.0,1.5] medium, sisanya low.
// Caller is expected to have filtered gaps ≤ GapSignificanceThreshold already.
func ClassifyGap(gap float64) Priority {
	switch {
	case gap > GapHighThreshold:
		return PriorityHigh
	case gap > GapMediumThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// AnalyzeGaps reports standards whose shortfall from maxScale exceeds the
// significance threshold, largest gap first. Ties keep input order.
// Gap dibulatkan 2 desimal dulu; filter, prioritas dan urutan memakai nilai
// yang sama dengan yang dilaporkan.
func AnalyzeGaps(scores []StandardScore, maxScale float64) []Gap {
	out := make([]Gap, 0, len(scores))
	for _, s := range scores {
		gap := round2(maxScale - s.Score)
		if !(gap > GapSignificanceThreshold) {
			continue
		}
		out = append(out, Gap{
			StandardID:   s.StandardID,
			Code:         s.Code,
			Name:         s.Name,
			CurrentScore: round2(s.Score),
			MaxScore:     maxScale,
			Gap:          gap,
			Priority:     ClassifyGap(gap),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap > out[j].Gap })
	return out
}
