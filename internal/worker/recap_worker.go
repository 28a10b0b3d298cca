// Package worker berisi job terjadwal bot (rekap harian otomatis).
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
	"github.com/rezhamata/BOT-REKAPAN/internal/report"
)

// RekapBuilder menyusun teks rekap untuk satu periode dan anchor
type RekapBuilder interface {
	BuildRekap(ctx context.Context, periode report.Periode, anchor time.Time) (string, error)
}

// Sender mengirim pesan keluar
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// RecapWorker mengirim rekap harian terjadwal ke daftar chat admin
type RecapWorker struct {
	cron    *cron.Cron
	builder RekapBuilder
	sender  Sender
	chatIDs []int64
	spec    string
}

// NewRecapWorker membuat worker rekap terjadwal. Jadwal dievaluasi di zona
// operasional (WIB), bukan zona host.
func NewRecapWorker(builder RekapBuilder, sender Sender, chatIDs []int64, spec string) *RecapWorker {
	return &RecapWorker{
		cron:    cron.New(cron.WithLocation(parser.Location())),
		builder: builder,
		sender:  sender,
		chatIDs: chatIDs,
		spec:    spec,
	}
}

// Start mendaftarkan job dan menjalankan scheduler di goroutine-nya sendiri
func (w *RecapWorker) Start() error {
	log := logger.GetAppLogger()

	if len(w.chatIDs) == 0 {
		log.Warn("⏰ [RECAP] TELEGRAM_CHAT_IDS kosong, rekap terjadwal dilewati")
		return nil
	}

	if _, err := w.cron.AddFunc(w.spec, w.kirimRekapHarian); err != nil {
		return err
	}

	w.cron.Start()
	log.WithFields(map[string]interface{}{
		"spec":  w.spec,
		"chats": len(w.chatIDs),
	}).Info("⏰ [RECAP] Rekap terjadwal aktif")

	return nil
}

// Stop menghentikan scheduler dan menunggu job yang sedang jalan selesai
func (w *RecapWorker) Stop() {
	<-w.cron.Stop().Done()
}

// kirimRekapHarian menyusun rekap harian hari ini lalu mengirim ke tiap chat
func (w *RecapWorker) kirimRekapHarian() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	teks, err := w.builder.BuildRekap(ctx, report.PeriodeHarian, time.Now().In(parser.Location()))
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("⏰ [RECAP] Gagal menyusun rekap terjadwal")
		return
	}

	for _, chatID := range w.chatIDs {
		if err := w.sender.SendMessage(ctx, chatID, teks); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("chatId", chatID).
				Error("⏰ [RECAP] Gagal mengirim rekap terjadwal")
		}
	}
}
