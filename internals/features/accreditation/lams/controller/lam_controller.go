// file: internals/features/accreditation/lams/controller/lam_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "akreditasi_backend/internals/features/accreditation/lams/dto"
	"akreditasi_backend/internals/features/accreditation/lams/model"
	lamRepo "akreditasi_backend/internals/features/accreditation/lams/repository"
	"akreditasi_backend/internals/features/accreditation/scoring"
	helper "akreditasi_backend/internals/helpers"
)

// LamStore: akses data skema yang dipakai controller.
type LamStore interface {
	ListLams(ctx context.Context, offset, limit int) ([]model.LamModel, int64, error)
	LoadTree(ctx context.Context, lamID uuid.UUID) (*lamRepo.Tree, error)
	FindLam(ctx context.Context, lamID uuid.UUID) (*model.LamModel, error)
	ReplaceLevels(ctx context.Context, lamID uuid.UUID, levels []model.LamLevelModel) error
}

type LamController struct {
	Store     LamStore
	Validator *validator.Validate
}

func NewLamController(db *gorm.DB) *LamController {
	return &LamController{
		Store:     lamRepo.NewStore(db),
		Validator: validator.New(),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func (ctl *LamController) loadTree(c *fiber.Ctx) (*lamRepo.Tree, error) {
	lamID, err := parseUUIDParam(c, "lam_id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "lam_id tidak valid")
	}
	tree, err := ctl.Store.LoadTree(c.UserContext(), lamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "LAM tidak ditemukan")
		}
		return nil, err
	}
	return tree, nil
}

// GET /lams
func (ctl *LamController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Store.ListLams(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar LAM")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// GET /lams/:lam_id: pohon standar → elemen → indikator
func (ctl *LamController) Detail(c *fiber.Ctx) error {
	tree, err := ctl.loadTree(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewLamDetailResponse(tree.Lam, lamRepo.ToScheme(tree)))
}

// GET /lams/:lam_id/weights: laporan rekonsiliasi bobot (informasi, tidak memblokir)
func (ctl *LamController) Weights(c *fiber.Ctx) error {
	tree, err := ctl.loadTree(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", scoring.CheckWeights(lamRepo.ToScheme(tree)))
}

// PUT /lams/:lam_id/levels
func (ctl *LamController) ReplaceLevels(c *fiber.Ctx) error {
	lamID, err := parseUUIDParam(c, "lam_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lam_id tidak valid")
	}

	var req dto.ReplaceLevelsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req = req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if name, dup := req.DuplicateName(); dup {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nama level duplikat: "+name)
	}

	lam, err := ctl.Store.FindLam(c.UserContext(), lamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "LAM tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	levels := req.ToModels()
	if err := ctl.Store.ReplaceLevels(c.UserContext(), lamID, levels); err != nil {
		return helper.WritePGError(c, err)
	}
	log.Printf("[INFO] level table %s diganti: %s", lam.LamCode, req.String())

	return helper.JsonUpdated(c, "Tabel level diperbarui", dto.NewLevelsResponse(lamID, levels, lam.LamFallbackLevel))
}
