// file: internals/route/details/accreditation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cycleRoute "akreditasi_backend/internals/features/accreditation/cycles/route"
	cycleService "akreditasi_backend/internals/features/accreditation/cycles/service"
	lamRoute "akreditasi_backend/internals/features/accreditation/lams/route"
)

// AccreditationUserRoutes: /api/u (token wajib, semua role)
func AccreditationUserRoutes(r fiber.Router, db *gorm.DB, svcs *cycleService.Services) {
	lamRoute.LamUserRoutes(r, db)
	cycleRoute.CycleUserRoutes(r, svcs)
}

// AccreditationAdminRoutes: /api/a (coordinator / assessor / admin)
func AccreditationAdminRoutes(r fiber.Router, db *gorm.DB, svcs *cycleService.Services) {
	lamRoute.LamAdminRoutes(r, db)
	cycleRoute.CycleAdminRoutes(r, svcs)
}
