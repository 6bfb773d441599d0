package route

import (
	"github.com/gofiber/fiber/v2"

	ctr "akreditasi_backend/internals/features/accreditation/cycles/controller"
	"akreditasi_backend/internals/features/accreditation/cycles/service"
)

// CycleUserRoutes: simulasi (tersimpan & what-if) dan riwayat snapshot
func CycleUserRoutes(r fiber.Router, svcs *service.Services) {
	cycleCtrl := ctr.NewCycleController(svcs)

	g := r.Group("/cycles/:cycle_id")
	g.Get("/simulation", cycleCtrl.GetSimulation)
	g.Post("/simulation", cycleCtrl.WhatIf)
	g.Get("/snapshots", cycleCtrl.ListSnapshots)
}

// CycleAdminRoutes: input nilai + snapshot manual
func CycleAdminRoutes(r fiber.Router, svcs *service.Services) {
	cycleCtrl := ctr.NewCycleController(svcs)

	g := r.Group("/cycles/:cycle_id")
	g.Post("/scores", cycleCtrl.CreateScore)
	g.Post("/snapshots", cycleCtrl.CreateSnapshot)
}
