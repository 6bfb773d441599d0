// file: internals/features/accreditation/cycles/service/wire.go
package service

import (
	"gorm.io/gorm"

	cycleRepo "akreditasi_backend/internals/features/accreditation/cycles/repository"
	lamRepo "akreditasi_backend/internals/features/accreditation/lams/repository"
)

// Services = dependency set yang dipakai route & scheduler.
type Services struct {
	Store       *cycleRepo.Store
	Simulator   *Simulator
	Recorder    *Recorder
	Snapshotter *Snapshotter
}

func NewServices(db *gorm.DB, pub EventPublisher) *Services {
	store := cycleRepo.NewStore(db)
	sim := NewSimulator(store, lamRepo.NewSchemeLoader(db))
	return &Services{
		Store:       store,
		Simulator:   sim,
		Recorder:    NewRecorder(sim, store),
		Snapshotter: NewSnapshotter(sim, store, pub),
	}
}
