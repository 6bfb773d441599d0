// file: internals/features/accreditation/scoring/resolver.go
package scoring

import "github.com/google/uuid"

// SelectAuthoritative picks the winning record for one indicator.
// Ranking is two-key: source priority desc, then RecordedAt desc.
// Records that tie on both keys keep input order (first one wins).
func SelectAuthoritative(records []ScoreRecord) (ScoreRecord, bool) {
	if len(records) == 0 {
		return ScoreRecord{}, false
	}
	best := records[0]
	for _, r := range records[1:] {
		if outranks(r, best) {
			best = r
		}
	}
	return best, true
}

func outranks(a, b ScoreRecord) bool {
	pa, pb := a.Source.Priority(), b.Source.Priority()
	if pa != pb {
		return pa > pb
	}
	return a.RecordedAt.After(b.RecordedAt)
}

// ResolveScore mengembalikan nilai record pemenang, atau 0 kalau tidak ada record.
func ResolveScore(records []ScoreRecord) float64 {
	r, ok := SelectAuthoritative(records)
	if !ok {
		return 0
	}
	return r.Value
}

// ResolveScores reduces records for many indicators into an indicator→score map.
func ResolveScores(records []ScoreRecord) map[uuid.UUID]float64 {
	grouped := make(map[uuid.UUID][]ScoreRecord)
	for _, r := range records {
		grouped[r.IndicatorID] = append(grouped[r.IndicatorID], r)
	}
	out := make(map[uuid.UUID]float64, len(grouped))
	for id, rs := range grouped {
		out[id] = ResolveScore(rs)
	}
	return out
}
