// Package bot berisi router perintah Telegram dan handler tiap perintah.
// Satu update diproses tuntas secara sinkron sebelum update berikutnya.
package bot

import (
	"context"
	"errors"
	"strings"

	activitysvc "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/service"
	authsvc "github.com/rezhamata/BOT-REKAPAN/internal/api/auth/service"
	laporsvc "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/service"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/telegram"
)

// Sender adalah kontrak pengiriman keluar yang dibutuhkan router
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// Router memetakan perintah masuk ke handler-nya
type Router struct {
	sender   Sender
	lapor    *laporsvc.LaporService
	users    *authsvc.UserService
	activity *activitysvc.ActivityService
}

// NewRouter membuat router perintah bot
func NewRouter(sender Sender, lapor *laporsvc.LaporService, users *authsvc.UserService, activity *activitysvc.ActivityService) *Router {
	return &Router{
		sender:   sender,
		lapor:    lapor,
		users:    users,
		activity: activity,
	}
}

// parseCommand memecah teks pesan menjadi perintah dan sisa payload.
// Mention bot ("/lapor@NamaBot") dibuang dari nama perintah.
func parseCommand(text string) (command, payload string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	command = text
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		command = text[:i]
		payload = strings.TrimSpace(text[i+1:])
	}
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	return strings.ToLower(command), payload
}

// HandleUpdate memproses satu update masuk sampai selesai. Tidak pernah
// panic keluar: pemanggil (poller/webhook) membungkus dengan recover.
func (r *Router) HandleUpdate(ctx context.Context, update telegram.Update) {
	msg := update.Message
	if msg == nil || strings.TrimSpace(msg.Text) == "" || msg.From == nil {
		return
	}

	chatID := msg.Chat.ID
	handle := msg.From.Username
	command, payload := parseCommand(msg.Text)

	switch command {
	case "/start", "/help":
		r.handleHelp(ctx, chatID, handle)
	case "/lapor":
		r.handleLapor(ctx, chatID, handle, payload)
	case "/harian", "/mingguan", "/bulanan":
		r.handleReport(ctx, chatID, handle, strings.TrimPrefix(command, "/"), payload)
	case "/rekap":
		r.handleRekapSemua(ctx, chatID, handle)
	case "/export":
		r.handleExport(ctx, chatID, handle, payload)
	case "/bersihkan":
		r.handleBersihkan(ctx, chatID, handle)
	case "":
		// Teks biasa tanpa perintah: beri petunjuk di chat pribadi saja
		if msg.Chat.Type == "private" {
			r.reply(ctx, chatID, "Kirim laporan dengan perintah /lapor diikuti isi laporan. Lihat /help untuk daftar perintah.")
		}
	default:
		r.reply(ctx, chatID, "Perintah tidak dikenali. Lihat /help untuk daftar perintah.")
	}
}

// reply mengirim balasan; kegagalan kirim hanya dicatat di log
func (r *Router) reply(ctx context.Context, chatID int64, text string) {
	if err := r.sender.SendMessage(ctx, chatID, text); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("chatId", chatID).
			Error("🤖 [BOT] Gagal mengirim balasan")
	}
}

// replyError menerjemahkan error service menjadi balasan yang aman dibaca
// user. Error di luar taksonomi aplikasi dibalas pesan sistem generik.
func (r *Router) replyError(ctx context.Context, chatID int64, err error) {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		r.reply(ctx, chatID, "⚠️ "+appErr.Message)
		return
	}
	logger.GetErrorLogger().WithError(err).Error("🤖 [BOT] Error tak terduga saat memproses perintah")
	r.reply(ctx, chatID, "⚠️ "+common.MsgInternalError)
}

// requireAdmin resolusi pengguna admin; balasan error langsung dikirim
func (r *Router) requireAdmin(ctx context.Context, chatID int64, handle string) bool {
	if _, err := r.users.RequireAdmin(ctx, handle); err != nil {
		r.replyError(ctx, chatID, err)
		return false
	}
	return true
}
