package scoring

import "github.com/google/uuid"

// twoStandardScheme: A(60) satu indikator, B(40) dua indikator, skala 0..4.
func twoStandardScheme() (Scheme, uuid.UUID, uuid.UUID, uuid.UUID) {
	a1 := uuid.New()
	b1 := uuid.New()
	b2 := uuid.New()
	scheme := Scheme{
		ID:            uuid.New(),
		Code:          "LAM-TEST",
		MinScoreScale: 0,
		MaxScoreScale: 4,
		TotalWeight:   100,
		Levels: []Level{
			{Name: "Baik", Threshold: 250},
			{Name: "Unggul", Threshold: 350},
			{Name: "BaikSekali", Threshold: 300},
		},
		Standards: []Standard{
			{
				ID: uuid.New(), Code: "A", Name: "Standar A", Weight: 60,
				Elements: []Element{{ID: uuid.New(), Code: "A.1", Indicators: []Indicator{
					{ID: a1, Code: "A.1.1", Weight: 1},
				}}},
			},
			{
				ID: uuid.New(), Code: "B", Name: "Standar B", Weight: 40,
				Elements: []Element{
					{ID: uuid.New(), Code: "B.1", Indicators: []Indicator{{ID: b1, Code: "B.1.1", Weight: 1}}},
					{ID: uuid.New(), Code: "B.2", Indicators: []Indicator{{ID: b2, Code: "B.2.1", Weight: 1}}},
				},
			},
		},
	}
	return scheme, a1, b1, b2
}
