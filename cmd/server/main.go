package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	activitysvc "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/service"
	authsvc "github.com/rezhamata/BOT-REKAPAN/internal/api/auth/service"
	laporsvc "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/service"
	"github.com/rezhamata/BOT-REKAPAN/internal/api/router"
	"github.com/rezhamata/BOT-REKAPAN/internal/bot"
	"github.com/rezhamata/BOT-REKAPAN/internal/database"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/sheets"
	"github.com/rezhamata/BOT-REKAPAN/internal/telegram"
	"github.com/rezhamata/BOT-REKAPAN/internal/worker"
)

// initLogger menginisialisasi sistem logger aplikasi
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// initServices merakit klien eksternal, service, dan router perintah bot
func initServices(ctx context.Context) (*bot.Router, *telegram.Client) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	sheetsClient, err := sheets.NewClient(ctx, cfg.SheetsCredentialsPath, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}

	tgClient := telegram.NewClient(cfg.TelegramBotToken)

	laporService, err := laporsvc.NewLaporService(sheetsClient, cfg.SheetLaporan, cfg.LegacyMinimalMode)
	if err != nil {
		log.Fatalf("Failed to create lapor service: %v", err)
	}
	userService, err := authsvc.NewUserService(sheetsClient, cfg.SheetUsers)
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}
	activityService, err := activitysvc.NewActivityService()
	if err != nil {
		log.Fatalf("Failed to create activity service: %v", err)
	}

	return bot.NewRouter(tgClient, laporService, userService, activityService), tgClient
}

// main_thread menjalankan Fiber server di main thread
func main_thread(app *fiber.App) {
	log := logger.GetAppLogger()
	address := ":" + global.ServerConfig.Address

	log.WithField("address", address).Info("Starting Fiber server")
	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()

	log := logger.GetAppLogger()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if global.MongoDB_Session != nil {
		defer database.CloseInstance(global.MongoDB_Session)
	}

	botRouter, tgClient := initServices(ctx)
	cfg := global.ServerConfig

	// Rekap harian terjadwal ke chat admin
	if cfg.RecapCronEnabled {
		recapWorker := worker.NewRecapWorker(botRouter, tgClient, cfg.ChatIDList(), cfg.RecapCronSpec)
		if err := recapWorker.Start(); err != nil {
			log.WithError(err).Error("Failed to start recap worker, continuing without scheduled recap")
		} else {
			defer recapWorker.Stop()
		}
	}

	// Mode polling: tarik update di goroutine sendiri dengan recover.
	// Mode webhook: update masuk lewat route HTTP, tidak perlu poller.
	if cfg.BotMode != "webhook" {
		poller := bot.NewPoller(tgClient, botRouter, cfg.PollTimeoutSeconds)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("🤖 [BOT] Poller goroutine panic")
				}
			}()
			poller.Run(ctx)
		}()
	}

	app := InitFiberApp()
	router.SetupRoutes(app, botRouter)
	main_thread(app)
}
