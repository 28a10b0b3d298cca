// Package webhookhdl - handler webhook Bot API Telegram (mode webhook).
package webhookhdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/rezhamata/BOT-REKAPAN/internal/bot"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/telegram"
)

// Header verifikasi yang dikirim Telegram sesuai setWebhook secret_token
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramWebhookHandler menerima update Telegram lewat HTTP POST
type TelegramWebhookHandler struct {
	router      *bot.Router
	secretToken string
}

// NewTelegramWebhookHandler membuat handler webhook Telegram
func NewTelegramWebhookHandler(router *bot.Router, secretToken string) *TelegramWebhookHandler {
	return &TelegramWebhookHandler{
		router:      router,
		secretToken: secretToken,
	}
}

// HandleTelegramWebhook memvalidasi secret token lalu memproses update.
// Selalu balas 200 untuk update yang diterima supaya Telegram tidak
// mengirim ulang; kegagalan pemrosesan sudah dibalas langsung ke chat.
func (h *TelegramWebhookHandler) HandleTelegramWebhook(c fiber.Ctx) error {
	if h.secretToken != "" && c.Get(secretTokenHeader) != h.secretToken {
		logger.GetErrorLogger().Warn("🔔 [WEBHOOK] Secret token tidak cocok, update ditolak")
		return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
			"code":    common.ErrCodeAuthUser.Code,
			"message": "invalid secret token",
			"status":  "error",
		})
	}

	var update telegram.Update
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("🔔 [WEBHOOK] Body update tidak valid")
		return c.Status(common.StatusBadRequest).JSON(fiber.Map{
			"code":    common.ErrCodeValidationFormat.Code,
			"message": "invalid update body",
			"status":  "error",
		})
	}

	h.dispatch(c, update)

	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": "update diterima",
		"status":  "success",
	})
}

// dispatch memproses update dengan recover supaya panic handler tidak
// menjalar ke server HTTP.
func (h *TelegramWebhookHandler) dispatch(c fiber.Ctx, update telegram.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.GetErrorLogger().WithField("panic", rec).WithField("updateId", update.UpdateID).
				Error("🔔 [WEBHOOK] Panic saat memproses update")
		}
	}()

	h.router.HandleUpdate(c.Context(), update)
}
