package seeds

import (
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"akreditasi_backend/internals/seeds/lams"
)

const DefaultLamSeedDir = "internals/seeds/lams/data"

// RunAllSeeds: satu file → satu file YAML; kosong = semua data_lam_*.yaml di DefaultLamSeedDir.
func RunAllSeeds(db *gorm.DB, file string) error {
	files := []string{file}
	if file == "" {
		matches, err := filepath.Glob(filepath.Join(DefaultLamSeedDir, "data_lam_*.yaml"))
		if err != nil {
			return err
		}
		files = matches
	}
	if len(files) == 0 {
		log.Println("ℹ️ Tidak ada file seed LAM.")
		return nil
	}

	//* LAM + standar + elemen + indikator + level (+ siklus demo)
	for _, f := range files {
		if err := lams.SeedLamFromYAML(db, f); err != nil {
			return err
		}
	}
	return nil
}
