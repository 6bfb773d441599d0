package database

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"akreditasi_backend/internals/configs"
	cycleModel "akreditasi_backend/internals/features/accreditation/cycles/model"
	lamModel "akreditasi_backend/internals/features/accreditation/lams/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	db, err := Open(configs.DSN())
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Open dipakai juga oleh seeder / CLI.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(context.Background()); err != nil {
			log.Printf("warm-up ping err: %v", err)
			return
		}
		// query yang paling sering dipakai simulasi
		DB.Exec("SELECT 1 FROM accreditation_cycles LIMIT 1")
	}()
}

func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate: dev/CI saja (DB_AUTO_MIGRATE=true). Prod pakai migrasi SQL.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&lamModel.LamModel{},
		&lamModel.LamLevelModel{},
		&lamModel.StandardModel{},
		&lamModel.ElementModel{},
		&lamModel.IndicatorModel{},
		&cycleModel.CycleModel{},
		&cycleModel.IndicatorScoreModel{},
		&cycleModel.SimulationSnapshotModel{},
	)
}
