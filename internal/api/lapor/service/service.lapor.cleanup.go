package laporsvc

import (
	"context"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// CleanupDuplicates menimpa ulang sheet LAPORAN dengan hanya kemunculan
// pertama tiap nomor AO (perbaikan untuk duplikat yang lolos race jendela
// cek-lalu-append). Baris tanpa nomor AO dibiarkan. Mengembalikan jumlah
// baris duplikat yang dibuang.
func (s *LaporService) CleanupDuplicates(ctx context.Context) (int, error) {
	rows, err := s.store.FetchRows(ctx, s.sheetName)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("📦 [LAPOR] Gagal membaca sheet saat pembersihan")
		return 0, common.ErrUpstreamIO
	}
	if len(rows) == 0 {
		return 0, nil
	}

	seen := make(map[string]bool)
	kept := make([][]string, 0, len(rows))
	kept = append(kept, rows[0]) // header

	removed := 0
	for _, row := range rows[1:] {
		ao := models.FromRow(row).NormalizedAO()
		if ao != "" && seen[ao] {
			removed++
			continue
		}
		if ao != "" {
			seen[ao] = true
		}
		kept = append(kept, row)
	}

	if removed == 0 {
		return 0, nil
	}

	if err := s.store.ReplaceRows(ctx, s.sheetName, kept); err != nil {
		logger.GetErrorLogger().WithError(err).Error("📦 [LAPOR] Gagal menimpa sheet saat pembersihan")
		return 0, common.ErrUpstreamIO
	}

	logger.GetAppLogger().WithField("removed", removed).
		Info("📦 [LAPOR] Pembersihan duplikat selesai")

	return removed, nil
}
