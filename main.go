package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"github.com/rayto1224/ksbc-web/internals/configs"
	database "github.com/rayto1224/ksbc-web/internals/databases"
	donationService "github.com/rayto1224/ksbc-web/internals/features/activities/donations/service"
	authScheduler "github.com/rayto1224/ksbc-web/internals/features/users/auth/scheduler"
	"github.com/rayto1224/ksbc-web/internals/middlewares"
	"github.com/rayto1224/ksbc-web/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "KSBC Web API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
	})

	// Request id + timing, before everything else.
	app.Use(func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = utils.UUID()
		}
		c.Set("X-Request-ID", rid)
		start := time.Now()
		err := c.Next()
		log.Printf("[%s] %s %s -> %d (%s)",
			rid, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.RunMigrations(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	authScheduler.StartBlacklistCleanupScheduler(database.DB)

	if serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY"); serverKey != "" {
		donationService.InitMidtrans(serverKey)
		log.Println("✅ Midtrans Snap client initialized")
	} else {
		log.Println("⚠️  MIDTRANS_SERVER_KEY not set, online giving disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	route.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")
	go func() {
		log.Printf("🚀 KSBC Web API listening on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️  Shutdown error: %v", err)
	}
	log.Println("👋 Bye")
}
