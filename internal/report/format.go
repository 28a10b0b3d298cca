package report

import (
	"fmt"
	"strings"

	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
)

// Batas peringkat yang ditampilkan per jenis laporan
func topNFor(periode Periode) int {
	switch periode {
	case PeriodeHarian:
		return 5
	case PeriodeMingguan:
		return 10
	case PeriodeBulanan:
		return 15
	}
	return 20
}

// judulFor memberi judul laporan per periode
func judulFor(periode Periode) string {
	switch periode {
	case PeriodeHarian:
		return "REKAP AKTIVASI HARIAN"
	case PeriodeMingguan:
		return "REKAP AKTIVASI MINGGUAN"
	case PeriodeBulanan:
		return "REKAP AKTIVASI BULANAN"
	}
	return "REKAP AKTIVASI SEMUA PERIODE"
}

// tulisPeringkat merender satu blok peringkat bernomor
func tulisPeringkat(b *strings.Builder, judul string, list []GroupCount, n int) {
	b.WriteString(fmt.Sprintf("<b>%s</b>\n", judul))
	if len(list) == 0 {
		b.WriteString("Belum ada data\n")
		return
	}
	for i, gc := range TopN(list, n) {
		b.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, gc.Key, gc.Count))
	}
}

// FormatRekap merender hasil agregasi menjadi teks laporan Telegram
// (parse mode HTML). adaWindow=false untuk laporan tanpa jendela tanggal
// (periode "semua"). Pesan panjang dipecah oleh layer pengiriman.
func FormatRekap(periode Periode, window Window, adaWindow bool, summary Summary) string {
	n := topNFor(periode)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s</b>\n", judulFor(periode)))

	if adaWindow {
		if periode == PeriodeHarian {
			b.WriteString(fmt.Sprintf("🗓 %s\n", parser.FormatTanggal(window.Start)))
		} else {
			b.WriteString(fmt.Sprintf("🗓 %s s.d. %s\n",
				parser.FormatTanggal(window.Start), parser.FormatTanggal(window.End)))
		}
	}

	b.WriteString(fmt.Sprintf("📦 Total laporan: %d\n\n", summary.Total))

	tulisPeringkat(&b, "👷 Teknisi", summary.PerTeknisi, n)
	b.WriteString("\n")
	tulisPeringkat(&b, "🗺 Workzone", summary.PerWorkzone, n)
	b.WriteString("\n")
	tulisPeringkat(&b, "🏢 Owner", summary.PerOwner, n)

	return strings.TrimRight(b.String(), "\n")
}
