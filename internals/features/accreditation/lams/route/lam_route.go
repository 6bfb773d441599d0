package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "akreditasi_backend/internals/features/accreditation/lams/controller"
)

// LamUserRoutes: read-only (skema, pohon, rekonsiliasi bobot)
func LamUserRoutes(r fiber.Router, db *gorm.DB) {
	lamCtrl := ctr.NewLamController(db)

	g := r.Group("/lams")
	g.Get("/", lamCtrl.List)
	g.Get("/:lam_id", lamCtrl.Detail)
	g.Get("/:lam_id/weights", lamCtrl.Weights)
}

// LamAdminRoutes: pemeliharaan tabel ambang level
func LamAdminRoutes(r fiber.Router, db *gorm.DB) {
	lamCtrl := ctr.NewLamController(db)

	g := r.Group("/lams")
	g.Put("/:lam_id/levels", lamCtrl.ReplaceLevels)
}
