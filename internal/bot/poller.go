package bot

import (
	"context"
	"time"

	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/telegram"
)

// Poller menarik update lewat long polling (mode default bot)
type Poller struct {
	client         *telegram.Client
	router         *Router
	timeoutSeconds int
}

// NewPoller membuat poller long polling
func NewPoller(client *telegram.Client, router *Router, timeoutSeconds int) *Poller {
	return &Poller{
		client:         client,
		router:         router,
		timeoutSeconds: timeoutSeconds,
	}
}

// Run menjalankan loop polling sampai context dibatalkan. Kegagalan
// getUpdates ditunggu sebentar lalu dicoba lagi; proses tidak pernah mati
// karena satu update yang gagal.
func (p *Poller) Run(ctx context.Context) {
	log := logger.GetAppLogger()
	log.Info("🤖 [BOT] Long polling dimulai")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			log.Info("🤖 [BOT] Long polling dihentikan")
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.GetErrorLogger().WithError(err).Error("🤖 [BOT] getUpdates gagal, tunggu sebelum coba lagi")
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			p.dispatch(ctx, update)
		}
	}
}

// dispatch memproses satu update dengan recover supaya panic di handler
// tidak merobohkan loop polling.
func (p *Poller) dispatch(ctx context.Context, update telegram.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.GetErrorLogger().WithField("panic", rec).WithField("updateId", update.UpdateID).
				Error("🤖 [BOT] Panic saat memproses update, lanjut ke update berikutnya")
			if update.Message != nil {
				p.router.reply(ctx, update.Message.Chat.ID, "⚠️ "+common.MsgInternalError)
			}
		}
	}()

	p.router.HandleUpdate(ctx, update)
}
