// Package router mendaftarkan route HTTP aplikasi (health check + webhook).
package router

import (
	"github.com/gofiber/fiber/v3"

	webhookhdl "github.com/rezhamata/BOT-REKAPAN/internal/api/webhook/handler"
	"github.com/rezhamata/BOT-REKAPAN/internal/bot"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
)

// SetupRoutes mendaftarkan seluruh route HTTP. Route webhook hanya aktif
// kalau BOT_MODE=webhook; mode polling cukup health check.
func SetupRoutes(app *fiber.App, botRouter *bot.Router) {
	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(common.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"mode":   global.ServerConfig.BotMode,
		})
	})

	if global.ServerConfig.BotMode == "webhook" {
		h := webhookhdl.NewTelegramWebhookHandler(botRouter, global.ServerConfig.WebhookSecretToken)
		app.Post("/webhook/telegram", h.HandleTelegramWebhook)
	}
}
