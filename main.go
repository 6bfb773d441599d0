package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"akreditasi_backend/internals/configs"
	database "akreditasi_backend/internals/databases"
	cycleService "akreditasi_backend/internals/features/accreditation/cycles/service"
	"akreditasi_backend/internals/features/accreditation/cycles/scheduler"
	helper "akreditasi_backend/internals/helpers"
	middlewares "akreditasi_backend/internals/middlewares"
	routes "akreditasi_backend/internals/route"
	"akreditasi_backend/internals/seeds"
)

func main() {
	seedOnly := flag.Bool("seed", false, "jalankan seeder LAM lalu keluar")
	flag.Parse()

	configs.LoadEnv()

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()

	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("❌ AutoMigrate gagal: %v", err)
		}
		log.Println("✅ AutoMigrate selesai.")
	}
	if *seedOnly || configs.SeedFile != "" {
		if err := seeds.RunAllSeeds(database.DB, configs.SeedFile); err != nil {
			log.Fatalf("❌ Seeder gagal: %v", err)
		}
		if *seedOnly {
			return
		}
	}
	database.WarmUpQueries()

	// 📣 event snapshot → Kafka (opsional)
	var pub cycleService.EventPublisher = cycleService.NoopPublisher{}
	if len(configs.KafkaBrokers) > 0 {
		pub = cycleService.NewKafkaPublisher(configs.KafkaBrokers, configs.KafkaSnapshotTopic)
		log.Printf("[INFO] Kafka publisher aktif topic=%s brokers=%v", configs.KafkaSnapshotTopic, configs.KafkaBrokers)
	}
	svcs := cycleService.NewServices(database.DB, pub)

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            helper.FromFiberError,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          configs.SplitList(configs.GetEnv("TRUSTED_PROXIES", "0.0.0.0/0")),
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// ⏱ snapshot harian setelah DB siap
	cr, err := scheduler.StartSnapshotScheduler(configs.SnapshotCron, svcs.Store, svcs.Snapshotter, configs.SnapshotWorkers)
	if err != nil {
		log.Fatalf("❌ Scheduler snapshot gagal: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, svcs)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: cron → http → kafka → DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	<-cr.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := pub.Close(); err != nil {
		log.Printf("[WARN] close publisher: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
