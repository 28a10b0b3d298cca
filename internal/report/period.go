// Package report berisi mesin agregasi berjendela tanggal: filter periode,
// tally peringkat per kelompok, render laporan, dan ekspor CSV.
package report

import (
	"time"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
)

// Periode adalah jenis jendela laporan
type Periode string

const (
	PeriodeHarian   Periode = "harian"
	PeriodeMingguan Periode = "mingguan"
	PeriodeBulanan  Periode = "bulanan"
	PeriodeSemua    Periode = "semua"
)

// Window adalah jendela tanggal inklusif [Start, End]
type Window struct {
	Start time.Time
	End   time.Time
}

// awalHari memotong waktu ke 00:00:00.000 di zona operasional
func awalHari(t time.Time) time.Time {
	t = t.In(parser.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, parser.Location())
}

// akhirHari adalah batas inklusif akhir hari (23:59:59.999)
func akhirHari(t time.Time) time.Time {
	return awalHari(t).Add(24*time.Hour - time.Millisecond)
}

// WindowFor menghitung jendela tanggal untuk satu periode terhadap anchor.
// ok=false untuk periode yang tidak dikenal (pemanggil tidak memfilter).
func WindowFor(periode Periode, anchor time.Time) (Window, bool) {
	switch periode {
	case PeriodeHarian:
		return Window{Start: awalHari(anchor), End: akhirHari(anchor)}, true

	case PeriodeMingguan:
		// Minggu selalu mulai Senin; Minggu (weekday 0) dihitung hari ke-7
		// minggu sebelumnya, jendela tidak pernah mulai di tengah minggu
		mundur := (int(anchor.In(parser.Location()).Weekday()) + 6) % 7
		senin := awalHari(anchor).AddDate(0, 0, -mundur)
		return Window{Start: senin, End: akhirHari(senin.AddDate(0, 0, 6))}, true

	case PeriodeBulanan:
		a := anchor.In(parser.Location())
		awal := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, parser.Location())
		return Window{Start: awal, End: akhirHari(awal.AddDate(0, 1, -1))}, true
	}

	return Window{}, false
}

// Contains true kalau tanggal t masuk jendela (inklusif kedua ujung)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// FilterPeriode mengembalikan subset record yang tanggalnya masuk jendela
// periode. Periode tidak dikenal mengembalikan semua record. Record dengan
// tanggal yang gagal diurai dikecualikan diam-diam, tidak pernah error.
func FilterPeriode(records []models.ActivationRecord, periode Periode, anchor time.Time) []models.ActivationRecord {
	window, ok := WindowFor(periode, anchor)
	if !ok {
		return records
	}

	hasil := make([]models.ActivationRecord, 0, len(records))
	for _, r := range records {
		tanggal, ok := parser.ParseTanggalLapor(r.Tanggal)
		if !ok {
			continue
		}
		if window.Contains(tanggal) {
			hasil = append(hasil, r)
		}
	}

	return hasil
}
