package bot

import (
	"context"
	"fmt"

	activitymodels "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/models"
)

// handleBersihkan memproses /bersihkan: buang baris duplikat (berdasarkan
// nomor AO) yang lolos race jendela cek-lalu-append, sisakan kemunculan pertama.
func (r *Router) handleBersihkan(ctx context.Context, chatID int64, handle string) {
	if !r.requireAdmin(ctx, chatID, handle) {
		r.activity.Record(ctx, chatID, handle, "/bersihkan", activitymodels.ActivityRejected, "bukan admin")
		return
	}

	removed, err := r.lapor.CleanupDuplicates(ctx)
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/bersihkan", activitymodels.ActivityError, err.Error())
		return
	}

	if removed == 0 {
		r.reply(ctx, chatID, "✅ Tidak ada duplikat. Sheet sudah bersih.")
	} else {
		r.reply(ctx, chatID, fmt.Sprintf("🧹 %d baris duplikat dibuang.", removed))
	}
	r.activity.Record(ctx, chatID, handle, "/bersihkan", activitymodels.ActivityOK, fmt.Sprintf("removed=%d", removed))
}
