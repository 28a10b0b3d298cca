package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	activitymodels "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
	"github.com/rezhamata/BOT-REKAPAN/internal/report"
)

// parseExportArgs membaca periode dan anchor opsional dari argumen /export.
// Tanpa kata kunci periode, seluruh data diekspor.
func parseExportArgs(payload string) (report.Periode, time.Time) {
	periode := report.PeriodeSemua
	for _, token := range strings.Fields(strings.ToLower(payload)) {
		switch report.Periode(token) {
		case report.PeriodeHarian, report.PeriodeMingguan, report.PeriodeBulanan:
			periode = report.Periode(token)
		}
	}
	return periode, resolveAnchor(payload)
}

// handleExport memproses /export: filter periode lalu kirim CSV sebagai dokumen
func (r *Router) handleExport(ctx context.Context, chatID int64, handle, payload string) {
	if !r.requireAdmin(ctx, chatID, handle) {
		r.activity.Record(ctx, chatID, handle, "/export", activitymodels.ActivityRejected, "bukan admin")
		return
	}

	periode, anchor := parseExportArgs(payload)

	records, err := r.lapor.FetchAll(ctx)
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/export", activitymodels.ActivityError, err.Error())
		return
	}
	filtered := report.FilterPeriode(records, periode, anchor)

	data, err := report.BuildCSV(filtered)
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/export", activitymodels.ActivityError, err.Error())
		return
	}

	filename := fmt.Sprintf("rekap_%s_%s.csv", periode, anchor.In(parser.Location()).Format("20060102"))
	caption := fmt.Sprintf("Ekspor %s, %d laporan", periode, len(filtered))

	if err := r.sender.SendDocument(ctx, chatID, filename, data, caption); err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/export", activitymodels.ActivityError, err.Error())
		return
	}

	r.activity.Record(ctx, chatID, handle, "/export", activitymodels.ActivityOK, filename)
}
