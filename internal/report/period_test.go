package report

import (
	"testing"
	"time"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
)

// 15 September 2025 adalah hari Senin
var anchorSenin = time.Date(2025, time.September, 15, 12, 0, 0, 0, parser.Location())

func TestWindowFor_Harian(t *testing.T) {
	w, ok := WindowFor(PeriodeHarian, anchorSenin)
	if !ok {
		t.Fatal("periode harian harus punya jendela")
	}

	mauAwal := time.Date(2025, time.September, 15, 0, 0, 0, 0, parser.Location())
	mauAkhir := time.Date(2025, time.September, 15, 23, 59, 59, 999000000, parser.Location())
	if !w.Start.Equal(mauAwal) || !w.End.Equal(mauAkhir) {
		t.Errorf("jendela harian salah: [%v, %v]", w.Start, w.End)
	}
}

func TestWindowFor_Mingguan(t *testing.T) {
	w, ok := WindowFor(PeriodeMingguan, anchorSenin)
	if !ok {
		t.Fatal("periode mingguan harus punya jendela")
	}

	// Senin 15 s.d. Minggu 21 September
	if w.Start.Day() != 15 || w.End.Day() != 21 {
		t.Errorf("jendela mingguan salah: [%v, %v]", w.Start, w.End)
	}

	// Anchor hari Minggu masuk minggu yang DIMULAI Senin sebelumnya
	minggu := time.Date(2025, time.September, 21, 8, 0, 0, 0, parser.Location())
	w, _ = WindowFor(PeriodeMingguan, minggu)
	if w.Start.Day() != 15 {
		t.Errorf("anchor hari Minggu harus mundur ke Senin 15, dapat %v", w.Start)
	}

	// Anchor tengah minggu juga mundur ke Senin yang sama
	kamis := time.Date(2025, time.September, 18, 8, 0, 0, 0, parser.Location())
	w, _ = WindowFor(PeriodeMingguan, kamis)
	if w.Start.Day() != 15 {
		t.Errorf("anchor Kamis harus mundur ke Senin 15, dapat %v", w.Start)
	}
}

func TestWindowFor_Bulanan(t *testing.T) {
	w, ok := WindowFor(PeriodeBulanan, anchorSenin)
	if !ok {
		t.Fatal("periode bulanan harus punya jendela")
	}

	if w.Start.Day() != 1 || w.Start.Month() != time.September {
		t.Errorf("awal bulan salah: %v", w.Start)
	}
	if w.End.Day() != 30 || w.End.Month() != time.September {
		t.Errorf("akhir bulan salah: %v", w.End)
	}
}

func TestWindowFor_PeriodeTidakDikenal(t *testing.T) {
	if _, ok := WindowFor(Periode("tahunan"), anchorSenin); ok {
		t.Error("periode tidak dikenal tidak boleh punya jendela")
	}
}

func rekamTanggal(tanggal, teknisi string) models.ActivationRecord {
	return models.ActivationRecord{Tanggal: tanggal, Teknisi: teknisi}
}

func TestFilterPeriode(t *testing.T) {
	records := []models.ActivationRecord{
		rekamTanggal("Senin, 15 September 2025", "a"),
		rekamTanggal("Minggu, 21 September 2025", "b"),
		rekamTanggal("Senin, 22 September 2025", "c"), // minggu berikutnya
		rekamTanggal("Jumat, 29 Agustus 2025", "d"),   // bulan sebelumnya
	}

	mingguan := FilterPeriode(records, PeriodeMingguan, anchorSenin)
	if len(mingguan) != 2 {
		t.Errorf("filter mingguan harus 2 record, dapat %d", len(mingguan))
	}

	bulanan := FilterPeriode(records, PeriodeBulanan, anchorSenin)
	if len(bulanan) != 3 {
		t.Errorf("filter bulanan harus 3 record, dapat %d", len(bulanan))
	}

	harian := FilterPeriode(records, PeriodeHarian, anchorSenin)
	if len(harian) != 1 || harian[0].Teknisi != "a" {
		t.Errorf("filter harian salah: %+v", harian)
	}
}

func TestFilterPeriode_TanggalRusakDikecualikan(t *testing.T) {
	records := []models.ActivationRecord{
		rekamTanggal("Senin, 15 September 2025", "a"),
		rekamTanggal("Monday, 15 September 2025", "b"), // hari di luar leksikon
		rekamTanggal("tanggal ngaco", "c"),
		rekamTanggal("", "d"),
	}

	hasil := FilterPeriode(records, PeriodeHarian, anchorSenin)
	if len(hasil) != 1 || hasil[0].Teknisi != "a" {
		t.Errorf("tanggal rusak harus dikecualikan tanpa error: %+v", hasil)
	}
}

func TestFilterPeriode_TidakDikenalKembalikanSemua(t *testing.T) {
	records := []models.ActivationRecord{
		rekamTanggal("Senin, 15 September 2025", "a"),
		rekamTanggal("tanggal ngaco", "b"),
	}

	hasil := FilterPeriode(records, PeriodeSemua, anchorSenin)
	if len(hasil) != len(records) {
		t.Errorf("periode tidak dikenal harus mengembalikan semua record, dapat %d", len(hasil))
	}
}
