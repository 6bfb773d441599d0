package lams

import (
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cycleModel "akreditasi_backend/internals/features/accreditation/cycles/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

func TestReadBundledInfokomSeed(t *testing.T) {
	seed, err := ReadLamSeed("data/data_lam_infokom.yaml")
	if err != nil {
		t.Fatalf("read seed: %v", err)
	}
	scheme := seed.ToScheme()

	rep := scoring.CheckWeights(scheme)
	if !rep.Reconciled {
		t.Fatalf("bundled weights must reconcile: %+v", rep)
	}
	if n := len(scheme.IndicatorSet()); n != 18 {
		t.Fatalf("expected 18 indicators, got %d", n)
	}

	table := scoring.NewLevelTable(scheme.Levels, scheme.FallbackLevel)
	if got := table.Predict(361); got != "Unggul" {
		t.Fatalf("Predict(361) = %q", got)
	}
	if got := table.Predict(199.99); got != scoring.NotAccredited {
		t.Fatalf("Predict(199.99) = %q", got)
	}

	m := seed.ToModels()
	if len(m.Elements) != 11 || len(m.Indicators) != 18 || len(m.Levels) != 3 {
		t.Fatalf("unexpected model counts: el=%d ind=%d lvl=%d", len(m.Elements), len(m.Indicators), len(m.Levels))
	}
	if m.Lam.LamSlug != "lam-infokom" {
		t.Fatalf("unexpected slug %q", m.Lam.LamSlug)
	}
	if len(m.Cycles) != 1 || m.Cycles[0].CycleStatus != cycleModel.CycleStatusActive {
		t.Fatalf("unexpected cycles: %+v", m.Cycles)
	}
}

func TestSeedIDsAreDeterministic(t *testing.T) {
	raw := []byte(`
code: LAM-X
standards:
  - code: S1
    weight: 100
    elements:
      - code: E1
        indicators:
          - { code: I1 }
          - { code: I2, weight: 3 }
`)
	a, err := ParseLamSeed(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, _ := ParseLamSeed(raw)

	if a.LamID() != b.LamID() {
		t.Fatalf("lam id should be stable")
	}
	ids := a.IndicatorIDsByCode()
	if ids["I1"] != b.IndicatorIDsByCode()["I1"] || ids["I1"] == ids["I2"] {
		t.Fatalf("indicator ids should be stable and distinct: %v", ids)
	}

	scheme := a.ToScheme()
	if scheme.MaxScoreScale != 4 || scheme.TotalWeight != 100 || scheme.FallbackLevel != scoring.NotAccredited {
		t.Fatalf("defaults not applied: %+v", scheme)
	}
	inds := scheme.Standards[0].Elements[0].Indicators
	if inds[0].Weight != 1 || inds[1].Weight != 3 {
		t.Fatalf("indicator weights: %+v", inds)
	}
}

func TestParseLamSeedRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no code", "standards: [{code: S1}]", "code wajib"},
		{"no standards", "code: X", "minimal satu standar"},
		{"bad scale", "code: X\nmin_score_scale: 5\nmax_score_scale: 4\nstandards: [{code: S1}]", "skala"},
		{"duplicate code", "code: X\nstandards:\n  - code: S1\n    elements: [{code: S1}]", "dua kali"},
		{"duplicate level", "code: X\nlevels: [{name: Baik, threshold: 1}, {name: baik, threshold: 2}]\nstandards: [{code: S1}]", "duplikat"},
		{"unknown field", "code: X\nbobot: 3\nstandards: [{code: S1}]", "decode yaml"},
		{"bad cycle status", "code: X\nstandards: [{code: S1}]\ncycles: [{program: P, year: 2025, status: archived}]", "status siklus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLamSeed([]byte(tt.raw))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// dryRunDB membangun SQL tanpa koneksi ke server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=uji password=uji dbname=uji port=5432 sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func floatVars(vars []interface{}) []float64 {
	var out []float64
	for _, v := range vars {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

func TestZeroWeightsSurviveInsert(t *testing.T) {
	seed, err := ParseLamSeed([]byte(`
code: LAM-NOL
max_score_scale: 5
standards:
  - code: S1
    weight: 100
    elements:
      - code: E1
        indicators:
          - { code: I0, weight: 0 }
          - { code: I1 }
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := seed.ToModels()
	if m.Indicators[0].IndicatorWeight != 0 || m.Indicators[1].IndicatorWeight != 1 {
		t.Fatalf("unexpected model weights: %+v", m.Indicators)
	}

	db := dryRunDB(t)

	stmt := db.Create(&m.Indicators[0]).Statement
	if !strings.Contains(stmt.SQL.String(), "indicator_weight") {
		t.Fatalf("indicator_weight missing from insert: %s", stmt.SQL.String())
	}
	if got := floatVars(stmt.Vars); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected bound weight 0, got %v", got)
	}

	stmt = db.Create(&m.Lam).Statement
	got := floatVars(stmt.Vars)
	want := []float64{0, 5, 100} // min, max, total
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v (%s)", want, got, stmt.SQL.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
