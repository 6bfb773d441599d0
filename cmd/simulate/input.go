package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"akreditasi_backend/internals/features/accreditation/scoring"
	"akreditasi_backend/internals/seeds/lams"
)

type RecordInput struct {
	Indicator  string    `yaml:"indicator"`
	Value      float64   `yaml:"value"`
	Source     string    `yaml:"source"`
	RecordedAt time.Time `yaml:"recorded_at"`
}

// ScoresFile: records (diresolve per sumber) lalu scores (what-if) menimpa hasilnya.
type ScoresFile struct {
	Scores  map[string]float64 `yaml:"scores"`
	Records []RecordInput      `yaml:"records"`
}

func readScoresFile(path string) (ScoresFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScoresFile{}, err
	}
	var f ScoresFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return ScoresFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}

// buildScores menerjemahkan kode indikator → id dan memvalidasi skala sebelum engine jalan.
func buildScores(seed lams.LamSeed, scheme scoring.Scheme, f ScoresFile) (map[uuid.UUID]float64, error) {
	ids := seed.IndicatorIDsByCode()
	lookup := func(code string) (uuid.UUID, error) {
		id, ok := ids[strings.TrimSpace(code)]
		if !ok {
			return uuid.Nil, fmt.Errorf("indikator %q tidak ada di skema %s", code, scheme.Code)
		}
		return id, nil
	}
	inRange := func(code string, v float64) error {
		if v < scheme.MinScoreScale || v > scheme.MaxScoreScale {
			return fmt.Errorf("indikator %s: nilai %.2f di luar skala [%.2f, %.2f]", code, v, scheme.MinScoreScale, scheme.MaxScoreScale)
		}
		return nil
	}

	records := make([]scoring.ScoreRecord, 0, len(f.Records))
	for i, r := range f.Records {
		id, err := lookup(r.Indicator)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		src := scoring.Source(strings.ToLower(strings.TrimSpace(r.Source)))
		if !src.Valid() {
			return nil, fmt.Errorf("records[%d]: sumber %q tidak dikenal", i, r.Source)
		}
		if err := inRange(r.Indicator, r.Value); err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		records = append(records, scoring.ScoreRecord{IndicatorID: id, Value: r.Value, Source: src, RecordedAt: r.RecordedAt})
	}

	scores := scoring.ResolveScores(records)
	for code, v := range f.Scores {
		id, err := lookup(code)
		if err != nil {
			return nil, err
		}
		if err := inRange(code, v); err != nil {
			return nil, err
		}
		scores[id] = v
	}
	return scores, nil
}
