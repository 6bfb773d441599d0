// file: internals/features/accreditation/lams/repository/lam_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akreditasi_backend/internals/features/accreditation/lams/model"
	"akreditasi_backend/internals/features/accreditation/scoring"
)

// Tree = semua baris satu LAM, sudah terurut sesuai kolom *_order.
type Tree struct {
	Lam        model.LamModel
	Levels     []model.LamLevelModel
	Standards  []model.StandardModel
	Elements   []model.ElementModel
	Indicators []model.IndicatorModel
}

/* ====================== LAM ====================== */

func FindLamByID(db *gorm.DB, lamID uuid.UUID) (*model.LamModel, error) {
	var lam model.LamModel
	if err := db.Where("lam_id = ?", lamID).First(&lam).Error; err != nil {
		return nil, err
	}
	return &lam, nil
}

func FindLamByCode(db *gorm.DB, code string) (*model.LamModel, error) {
	var lam model.LamModel
	if err := db.Where("lam_code = ?", code).First(&lam).Error; err != nil {
		return nil, err
	}
	return &lam, nil
}

func ListLams(db *gorm.DB, offset, limit int) ([]model.LamModel, int64, error) {
	var (
		rows  []model.LamModel
		total int64
	)
	if err := db.Model(&model.LamModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("lam_code ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ====================== TREE ====================== */

// LoadTree reads the full scheme tree. Urutan stabil: *_order lalu code.
func LoadTree(db *gorm.DB, lamID uuid.UUID) (*Tree, error) {
	lam, err := FindLamByID(db, lamID)
	if err != nil {
		return nil, err
	}
	t := &Tree{Lam: *lam}

	if err := db.Where("lam_level_lam_id = ?", lamID).
		Order("lam_level_order ASC, lam_level_id ASC").
		Find(&t.Levels).Error; err != nil {
		return nil, err
	}
	if err := db.Where("standard_lam_id = ?", lamID).
		Order("standard_order ASC, standard_code ASC").
		Find(&t.Standards).Error; err != nil {
		return nil, err
	}
	if len(t.Standards) == 0 {
		return t, nil
	}

	stdIDs := make([]uuid.UUID, 0, len(t.Standards))
	for _, s := range t.Standards {
		stdIDs = append(stdIDs, s.StandardID)
	}
	if err := db.Where("element_standard_id IN ?", stdIDs).
		Order("element_order ASC, element_code ASC").
		Find(&t.Elements).Error; err != nil {
		return nil, err
	}
	if len(t.Elements) == 0 {
		return t, nil
	}

	elIDs := make([]uuid.UUID, 0, len(t.Elements))
	for _, e := range t.Elements {
		elIDs = append(elIDs, e.ElementID)
	}
	if err := db.Where("indicator_element_id IN ?", elIDs).
		Order("indicator_order ASC, indicator_code ASC").
		Find(&t.Indicators).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ReplaceLevels mengganti seluruh tabel ambang dalam satu transaksi.
func ReplaceLevels(db *gorm.DB, lamID uuid.UUID, levels []model.LamLevelModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lam_level_lam_id = ?", lamID).Delete(&model.LamLevelModel{}).Error; err != nil {
			return err
		}
		if len(levels) == 0 {
			return nil
		}
		for i := range levels {
			levels[i].LamLevelLamID = lamID
			levels[i].LamLevelOrder = i
		}
		return tx.Create(&levels).Error
	})
}

/* ====================== SNAPSHOT ====================== */

// ToScheme maps persisted rows into the engine's read-only scheme.
// Elements/indicators whose parent is missing from the tree are dropped.
func ToScheme(t *Tree) scoring.Scheme {
	scheme := scoring.Scheme{
		ID:            t.Lam.LamID,
		Code:          t.Lam.LamCode,
		Name:          t.Lam.LamName,
		MinScoreScale: t.Lam.LamMinScoreScale,
		MaxScoreScale: t.Lam.LamMaxScoreScale,
		TotalWeight:   t.Lam.LamTotalWeight,
		FallbackLevel: t.Lam.LamFallbackLevel,
		Levels:        make([]scoring.Level, 0, len(t.Levels)),
		Standards:     make([]scoring.Standard, 0, len(t.Standards)),
	}
	for _, l := range t.Levels {
		scheme.Levels = append(scheme.Levels, scoring.Level{Name: l.LamLevelName, Threshold: l.LamLevelThreshold})
	}

	indByElement := make(map[uuid.UUID][]scoring.Indicator)
	for _, ind := range t.Indicators {
		indByElement[ind.IndicatorElementID] = append(indByElement[ind.IndicatorElementID], scoring.Indicator{
			ID:     ind.IndicatorID,
			Code:   ind.IndicatorCode,
			Name:   ind.IndicatorName,
			Weight: ind.IndicatorWeight,
		})
	}
	elByStandard := make(map[uuid.UUID][]scoring.Element)
	for _, el := range t.Elements {
		elByStandard[el.ElementStandardID] = append(elByStandard[el.ElementStandardID], scoring.Element{
			ID:         el.ElementID,
			Code:       el.ElementCode,
			Name:       el.ElementName,
			Indicators: indByElement[el.ElementID],
		})
	}
	for _, s := range t.Standards {
		scheme.Standards = append(scheme.Standards, scoring.Standard{
			ID:       s.StandardID,
			Code:     s.StandardCode,
			Name:     s.StandardName,
			Weight:   s.StandardWeight,
			Elements: elByStandard[s.StandardID],
		})
	}
	return scheme
}

// SchemeLoader is the data-access side of fetch-then-compute.
type SchemeLoader struct {
	DB *gorm.DB
}

func NewSchemeLoader(db *gorm.DB) *SchemeLoader {
	return &SchemeLoader{DB: db}
}

func (l *SchemeLoader) LoadScheme(ctx context.Context, lamID uuid.UUID) (scoring.Scheme, error) {
	t, err := LoadTree(l.DB.WithContext(ctx), lamID)
	if err != nil {
		return scoring.Scheme{}, fmt.Errorf("load lam %s: %w", lamID, err)
	}
	return ToScheme(t), nil
}

/* ====================== STORE ====================== */

// Store membungkus fungsi repository dengan ctx untuk controller.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) ListLams(ctx context.Context, offset, limit int) ([]model.LamModel, int64, error) {
	return ListLams(s.DB.WithContext(ctx), offset, limit)
}

func (s *Store) LoadTree(ctx context.Context, lamID uuid.UUID) (*Tree, error) {
	return LoadTree(s.DB.WithContext(ctx), lamID)
}

func (s *Store) FindLam(ctx context.Context, lamID uuid.UUID) (*model.LamModel, error) {
	return FindLamByID(s.DB.WithContext(ctx), lamID)
}

func (s *Store) ReplaceLevels(ctx context.Context, lamID uuid.UUID, levels []model.LamLevelModel) error {
	return ReplaceLevels(s.DB.WithContext(ctx), lamID, levels)
}
