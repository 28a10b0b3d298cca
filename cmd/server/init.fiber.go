package main

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// InitFiberApp menginisialisasi aplikasi Fiber (health check + webhook)
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Bot Rekapan Aktivasi",
		ServerHeader: "Bot Rekapan Aktivasi",

		// Body webhook Telegram kecil; 1MB lebih dari cukup
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized, fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthUser.Code
				}
			}

			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID untuk trace log per request
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))

	// Recover supaya panic handler tidak merobohkan server
	app.Use(recover.New())

	// Rate limit dasar; webhook Telegram tidak akan melewati batas ini
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	return app
}
