// file: internals/seeds/lams/seed_lam.go
package lams

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cycleModel "akreditasi_backend/internals/features/accreditation/cycles/model"
	lamModel "akreditasi_backend/internals/features/accreditation/lams/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
	helper "akreditasi_backend/internals/helpers"
)

// id seed deterministik: file yang sama → uuid yang sama di semua environment
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("akreditasi_backend/seeds/lams"))

type LevelSeed struct {
	Name      string  `yaml:"name"`
	Threshold float64 `yaml:"threshold"`
}

type IndicatorSeed struct {
	Code   string   `yaml:"code"`
	Name   string   `yaml:"name"`
	Weight *float64 `yaml:"weight"` // kosong = 1
}

type ElementSeed struct {
	Code       string          `yaml:"code"`
	Name       string          `yaml:"name"`
	Weight     float64         `yaml:"weight"`
	Indicators []IndicatorSeed `yaml:"indicators"`
}

type StandardSeed struct {
	Code     string        `yaml:"code"`
	Name     string        `yaml:"name"`
	Weight   float64       `yaml:"weight"`
	Elements []ElementSeed `yaml:"elements"`
}

type CycleSeed struct {
	Program string `yaml:"program"`
	Year    int    `yaml:"year"`
	Status  string `yaml:"status"`
}

type LamSeed struct {
	Code          string         `yaml:"code"`
	Name          string         `yaml:"name"`
	MinScoreScale float64        `yaml:"min_score_scale"`
	MaxScoreScale float64        `yaml:"max_score_scale"`
	TotalWeight   float64        `yaml:"total_weight"`
	FallbackLevel string         `yaml:"fallback_level"`
	Levels        []LevelSeed    `yaml:"levels"`
	Standards     []StandardSeed `yaml:"standards"`
	Cycles        []CycleSeed    `yaml:"cycles"`
}

/* =========================================================
   Parse + validate
========================================================= */

func ReadLamSeed(path string) (LamSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LamSeed{}, err
	}
	return ParseLamSeed(raw)
}

// ParseLamSeed: decode YAML (field asing ditolak) + isi default + validasi struktur.
func ParseLamSeed(raw []byte) (LamSeed, error) {
	var s LamSeed
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return LamSeed{}, fmt.Errorf("decode yaml: %w", err)
	}

	s.Code = strings.TrimSpace(s.Code)
	if s.MaxScoreScale == 0 {
		s.MaxScoreScale = 4
	}
	if s.TotalWeight == 0 {
		s.TotalWeight = 100
	}
	if strings.TrimSpace(s.FallbackLevel) == "" {
		s.FallbackLevel = scoring.NotAccredited
	}
	return s, s.validate()
}

func (s LamSeed) validate() error {
	if s.Code == "" {
		return errors.New("code wajib diisi")
	}
	if s.MaxScoreScale <= s.MinScoreScale {
		return fmt.Errorf("skala tidak valid: min=%.2f max=%.2f", s.MinScoreScale, s.MaxScoreScale)
	}
	if len(s.Standards) == 0 {
		return errors.New("minimal satu standar")
	}

	seen := map[string]string{}
	claim := func(kind, code string) error {
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("%s tanpa code", kind)
		}
		if prev, ok := seen[code]; ok {
			return fmt.Errorf("code %q dipakai dua kali (%s & %s)", code, prev, kind)
		}
		seen[code] = kind
		return nil
	}
	for _, st := range s.Standards {
		if err := claim("standar", st.Code); err != nil {
			return err
		}
		for _, el := range st.Elements {
			if err := claim("elemen", el.Code); err != nil {
				return err
			}
			for _, ind := range el.Indicators {
				if err := claim("indikator", ind.Code); err != nil {
					return err
				}
				if ind.Weight != nil && *ind.Weight < 0 {
					return fmt.Errorf("indikator %s: bobot negatif", ind.Code)
				}
			}
		}
	}

	levelNames := map[string]struct{}{}
	for _, l := range s.Levels {
		k := strings.ToLower(strings.TrimSpace(l.Name))
		if k == "" {
			return errors.New("level tanpa nama")
		}
		if _, dup := levelNames[k]; dup {
			return fmt.Errorf("level %q duplikat", l.Name)
		}
		levelNames[k] = struct{}{}
	}
	for _, c := range s.Cycles {
		switch cycleModel.CycleStatus(c.Status) {
		case "", cycleModel.CycleStatusDraft, cycleModel.CycleStatusActive, cycleModel.CycleStatusClosed:
		default:
			return fmt.Errorf("status siklus %q tidak dikenal", c.Status)
		}
	}
	return nil
}

/* =========================================================
   Seed → scheme / models
========================================================= */

func (s LamSeed) id(kind, code string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(s.Code+"/"+kind+"/"+strings.TrimSpace(code)))
}

func (s LamSeed) LamID() uuid.UUID { return s.id("lam", s.Code) }

// ToScheme: snapshot read-only untuk engine (dipakai juga oleh CLI simulate).
func (s LamSeed) ToScheme() scoring.Scheme {
	scheme := scoring.Scheme{
		ID:            s.LamID(),
		Code:          s.Code,
		Name:          s.Name,
		MinScoreScale: s.MinScoreScale,
		MaxScoreScale: s.MaxScoreScale,
		TotalWeight:   s.TotalWeight,
		FallbackLevel: s.FallbackLevel,
	}
	for _, l := range s.Levels {
		scheme.Levels = append(scheme.Levels, scoring.Level{Name: strings.TrimSpace(l.Name), Threshold: l.Threshold})
	}
	for _, st := range s.Standards {
		std := scoring.Standard{ID: s.id("standard", st.Code), Code: st.Code, Name: st.Name, Weight: st.Weight}
		for _, el := range st.Elements {
			e := scoring.Element{ID: s.id("element", el.Code), Code: el.Code, Name: el.Name}
			for _, ind := range el.Indicators {
				w := 1.0
				if ind.Weight != nil {
					w = *ind.Weight
				}
				e.Indicators = append(e.Indicators, scoring.Indicator{
					ID: s.id("indicator", ind.Code), Code: ind.Code, Name: ind.Name, Weight: w,
				})
			}
			std.Elements = append(std.Elements, e)
		}
		scheme.Standards = append(scheme.Standards, std)
	}
	return scheme
}

// IndicatorIDsByCode: lookup code → id (input CLI memakai code, bukan uuid).
func (s LamSeed) IndicatorIDsByCode() map[string]uuid.UUID {
	out := map[string]uuid.UUID{}
	s.ToScheme().EachIndicator(func(_ scoring.Standard, ind scoring.Indicator) {
		out[ind.Code] = ind.ID
	})
	return out
}

type Models struct {
	Lam        lamModel.LamModel
	Levels     []lamModel.LamLevelModel
	Standards  []lamModel.StandardModel
	Elements   []lamModel.ElementModel
	Indicators []lamModel.IndicatorModel
	Cycles     []cycleModel.CycleModel
}

func (s LamSeed) ToModels() Models {
	lamID := s.LamID()
	m := Models{Lam: lamModel.LamModel{
		LamID:            lamID,
		LamCode:          s.Code,
		LamSlug:          helper.Slugify(s.Code, 100),
		LamName:          s.Name,
		LamMinScoreScale: s.MinScoreScale,
		LamMaxScoreScale: s.MaxScoreScale,
		LamTotalWeight:   s.TotalWeight,
		LamFallbackLevel: s.FallbackLevel,
	}}
	for i, l := range s.Levels {
		m.Levels = append(m.Levels, lamModel.LamLevelModel{
			LamLevelID:        s.id("level", l.Name),
			LamLevelLamID:     lamID,
			LamLevelName:      strings.TrimSpace(l.Name),
			LamLevelThreshold: l.Threshold,
			LamLevelOrder:     i,
		})
	}
	for si, st := range s.Standards {
		stdID := s.id("standard", st.Code)
		m.Standards = append(m.Standards, lamModel.StandardModel{
			StandardID: stdID, StandardLamID: lamID, StandardCode: st.Code,
			StandardName: st.Name, StandardWeight: st.Weight, StandardOrder: si,
		})
		for ei, el := range st.Elements {
			elID := s.id("element", el.Code)
			m.Elements = append(m.Elements, lamModel.ElementModel{
				ElementID: elID, ElementStandardID: stdID, ElementCode: el.Code,
				ElementName: el.Name, ElementWeight: el.Weight, ElementOrder: ei,
			})
			for ii, ind := range el.Indicators {
				w := 1.0
				if ind.Weight != nil {
					w = *ind.Weight
				}
				m.Indicators = append(m.Indicators, lamModel.IndicatorModel{
					IndicatorID: s.id("indicator", ind.Code), IndicatorElementID: elID, IndicatorCode: ind.Code,
					IndicatorName: ind.Name, IndicatorWeight: w, IndicatorOrder: ii,
				})
			}
		}
	}
	for _, c := range s.Cycles {
		status := cycleModel.CycleStatus(c.Status)
		if status == "" {
			status = cycleModel.CycleStatusDraft
		}
		m.Cycles = append(m.Cycles, cycleModel.CycleModel{
			CycleID:          s.id("cycle", fmt.Sprintf("%s/%d", c.Program, c.Year)),
			CycleLamID:       lamID,
			CycleProgramName: c.Program,
			CycleYear:        c.Year,
			CycleStatus:      status,
		})
	}
	return m
}

/* =========================================================
   Seeder
========================================================= */

// SeedLamFromYAML idempotent: baris yang sudah ada (by primary key) dilewati.
func SeedLamFromYAML(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	seed, err := ReadLamSeed(filePath)
	if err != nil {
		return fmt.Errorf("seed %s: %w", filePath, err)
	}
	if rep := scoring.CheckWeights(seed.ToScheme()); !rep.Reconciled {
		log.Printf("⚠️ Bobot standar %s = %.2f (expected %.2f)", seed.Code, rep.ActualTotal, rep.ExpectedTotal)
	}

	var existing int64
	if err := db.Table("lams").Where("lam_code = ?", seed.Code).Count(&existing).Error; err != nil {
		return fmt.Errorf("seed %s: %w", seed.Code, err)
	}
	if existing > 0 {
		log.Printf("ℹ️ LAM %s sudah ada, dilewati", seed.Code)
		return nil
	}

	m := seed.ToModels()
	err = db.Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true})
		if err := skip.Create(&m.Lam).Error; err != nil {
			return err
		}
		batches := []any{&m.Levels, &m.Standards, &m.Elements, &m.Indicators, &m.Cycles}
		lens := []int{len(m.Levels), len(m.Standards), len(m.Elements), len(m.Indicators), len(m.Cycles)}
		for i, rows := range batches {
			if lens[i] == 0 {
				continue
			}
			if err := skip.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", seed.Code, err)
	}

	log.Printf("✅ LAM %s: %d standar, %d elemen, %d indikator, %d level, %d siklus",
		seed.Code, len(m.Standards), len(m.Elements), len(m.Indicators), len(m.Levels), len(m.Cycles))
	return nil
}
