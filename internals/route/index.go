// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akreditasi_backend/internals/configs"
	"akreditasi_backend/internals/constants"
	cycleService "akreditasi_backend/internals/features/accreditation/cycles/service"
	"akreditasi_backend/internals/middlewares"
	authMiddleware "akreditasi_backend/internals/middlewares/auth"
	routeDetails "akreditasi_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, svcs *cycleService.Services) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== USER (read + what-if) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", auth)

	// ===================== ADMIN (tulis) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth,
		authMiddleware.RequireRoles(constants.RoleErrorWriter("penilaian akreditasi"), constants.WriteRoles...),
		middlewares.WriteRateLimiter(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Accreditation routes...")
	routeDetails.AccreditationUserRoutes(user, db, svcs)
	routeDetails.AccreditationAdminRoutes(admin, db, svcs)
}
