// Package laporsvc berisi service jalur tulis laporan aktivasi:
// klasifikasi, ekstraksi, validasi, dedup, lalu append ke sheet LAPORAN.
package laporsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/dto"
	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
)

// RowStore adalah kontrak penyimpanan tabular yang dibutuhkan service.
// Baris 0 adalah header; layer ini tidak menjaga keunikan baris.
type RowStore interface {
	FetchRows(ctx context.Context, sheetName string) ([][]string, error)
	AppendRow(ctx context.Context, sheetName string, row []string) error
	ReplaceRows(ctx context.Context, sheetName string, rows [][]string) error
}

// LaporService memproses laporan aktivasi masuk.
//
// Keterbatasan yang disengaja: cek duplikat dan append tidak atomik. Dua
// laporan dengan nomor AO sama yang masuk nyaris bersamaan bisa lolos
// dua-duanya karena Sheets tidak punya primitive conditional-append.
// Perintah /bersihkan (CleanupDuplicates) adalah jalur perbaikannya.
type LaporService struct {
	store         RowStore
	sheetName     string
	legacyMinimal bool
}

// NewLaporService membuat service laporan aktivasi.
// legacyMinimal mengaktifkan aturan validasi mode minimal lama
// (SN ONT + NIK ONT wajib, nomor AO boleh kosong).
func NewLaporService(store RowStore, sheetName string, legacyMinimal bool) (*LaporService, error) {
	if store == nil {
		return nil, fmt.Errorf("row store belum diinisialisasi: %w", common.ErrNotFound)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("nama sheet laporan kosong: %w", common.ErrNotFound)
	}
	return &LaporService{
		store:         store,
		sheetName:     sheetName,
		legacyMinimal: legacyMinimal,
	}, nil
}

// FetchAll membaca seluruh record tersimpan (baris header dilewati)
func (s *LaporService) FetchAll(ctx context.Context) ([]models.ActivationRecord, error) {
	rows, err := s.store.FetchRows(ctx, s.sheetName)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("📦 [LAPOR] Gagal membaca sheet laporan")
		return nil, common.ErrUpstreamIO
	}

	records := make([]models.ActivationRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		records = append(records, models.FromRow(row))
	}

	return records, nil
}

// IsDuplicate cek apakah nomor AO kandidat sudah ada di record tersimpan.
// Perbandingan case-insensitive dengan whitespace di-trim; scan O(n) cukup
// untuk volume data yang diharapkan.
func (s *LaporService) IsDuplicate(candidateAO string, existing []models.ActivationRecord) bool {
	normalized := models.ActivationRecord{AO: candidateAO}.NormalizedAO()
	for _, r := range existing {
		if r.NormalizedAO() == normalized {
			return true
		}
	}
	return false
}

// validate menjalankan aturan field wajib sesuai mode alur.
// Mengembalikan *common.Error dengan daftar label field yang kurang.
func (s *LaporService) validate(record models.ActivationRecord) error {
	var err error
	if s.legacyMinimal {
		err = global.Validate.Struct(dto.LaporInputLegacy{
			SNOnt:   record.SNOnt,
			NikOnt:  record.NikOnt,
			Teknisi: record.Teknisi,
		})
	} else {
		err = global.Validate.Struct(dto.LaporInput{
			AO:      record.AO,
			Teknisi: record.Teknisi,
		})
	}
	if err == nil {
		return nil
	}

	missing := global.MissingFields(err)
	return common.NewError(common.ErrCodeValidationInput,
		fmt.Sprintf("Data laporan tidak lengkap. Field wajib: %s", joinFields(missing)),
		common.StatusBadRequest, missing)
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f
	}
	return out
}

// Submit memproses satu laporan masuk sampai tersimpan:
// klasifikasi -> ekstraksi -> validasi -> cek duplikat -> append.
// Error yang dikembalikan selalu *common.Error dan aman ditampilkan ke user.
func (s *LaporService) Submit(ctx context.Context, rawText, submitterHandle string) (models.ActivationRecord, error) {
	log := logger.GetAppLogger()

	format := parser.Classify(rawText)
	record := parser.Extract(rawText, submitterHandle)

	log.WithFields(map[string]interface{}{
		"format":  string(format),
		"teknisi": record.Teknisi,
		"ao":      record.AO,
	}).Info("📦 [LAPOR] Laporan masuk diekstraksi")

	if err := s.validate(record); err != nil {
		return record, err
	}

	existing, err := s.FetchAll(ctx)
	if err != nil {
		return record, err
	}
	if record.AO != "" && s.IsDuplicate(record.AO, existing) {
		log.WithField("ao", record.AO).Warn("📦 [LAPOR] Laporan ditolak: duplikat")
		return record, common.ErrDuplicate
	}

	record.Tanggal = parser.FormatTanggal(time.Now())

	if err := s.store.AppendRow(ctx, s.sheetName, record.ToRow()); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("ao", record.AO).
			Error("📦 [LAPOR] Gagal menyimpan laporan ke sheet")
		return record, common.ErrUpstreamIO
	}

	log.WithFields(map[string]interface{}{
		"ao":      record.AO,
		"teknisi": record.Teknisi,
	}).Info("📦 [LAPOR] Laporan tersimpan")

	return record, nil
}
