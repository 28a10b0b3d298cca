package bot

import (
	"context"
	"time"

	activitymodels "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
	"github.com/rezhamata/BOT-REKAPAN/internal/report"
)

// resolveAnchor mengurai tanggal anchor dari argumen perintah; tanpa
// kecocokan jatuh ke "sekarang" di zona operasional.
func resolveAnchor(args string) time.Time {
	if anchor, ok := parser.ParseTanggalInput(args); ok {
		return anchor
	}
	return time.Now().In(parser.Location())
}

// BuildRekap membaca seluruh record, memfilter periode, lalu merender teks
// laporan. Dipakai perintah laporan admin dan recap worker terjadwal.
func (r *Router) BuildRekap(ctx context.Context, periode report.Periode, anchor time.Time) (string, error) {
	records, err := r.lapor.FetchAll(ctx)
	if err != nil {
		return "", err
	}

	filtered := report.FilterPeriode(records, periode, anchor)
	summary := report.Aggregate(filtered)
	window, adaWindow := report.WindowFor(periode, anchor)

	return report.FormatRekap(periode, window, adaWindow, summary), nil
}

// handleReport memproses /harian, /mingguan, /bulanan (khusus admin)
func (r *Router) handleReport(ctx context.Context, chatID int64, handle, periodeArg, payload string) {
	if !r.requireAdmin(ctx, chatID, handle) {
		r.activity.Record(ctx, chatID, handle, "/"+periodeArg, activitymodels.ActivityRejected, "bukan admin")
		return
	}

	periode := report.Periode(periodeArg)
	teks, err := r.BuildRekap(ctx, periode, resolveAnchor(payload))
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/"+periodeArg, activitymodels.ActivityError, err.Error())
		return
	}

	r.reply(ctx, chatID, teks)
	r.activity.Record(ctx, chatID, handle, "/"+periodeArg, activitymodels.ActivityOK, "")
}

// handleRekapSemua memproses /rekap: agregasi seluruh data tanpa jendela
func (r *Router) handleRekapSemua(ctx context.Context, chatID int64, handle string) {
	if !r.requireAdmin(ctx, chatID, handle) {
		r.activity.Record(ctx, chatID, handle, "/rekap", activitymodels.ActivityRejected, "bukan admin")
		return
	}

	teks, err := r.BuildRekap(ctx, report.PeriodeSemua, time.Now().In(parser.Location()))
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/rekap", activitymodels.ActivityError, err.Error())
		return
	}

	r.reply(ctx, chatID, teks)
	r.activity.Record(ctx, chatID, handle, "/rekap", activitymodels.ActivityOK, "")
}
