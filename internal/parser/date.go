package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Seluruh tanggal bot mengikuti zona operasional lapangan
const TimeZoneName = "Asia/Jakarta"

var (
	locOnce sync.Once
	locWIB  *time.Location
)

// Location mengembalikan zona waktu operasional (WIB). Kalau database zona
// tidak tersedia di host, jatuh ke offset tetap UTC+7.
func Location() *time.Location {
	locOnce.Do(func() {
		loc, err := time.LoadLocation(TimeZoneName)
		if err != nil {
			loc = time.FixedZone("WIB", 7*60*60)
		}
		locWIB = loc
	})
	return locWIB
}

// Leksikon nama hari dan bulan bahasa Indonesia. Token di luar leksikon
// dianggap tanggal tidak valid, bukan dikoreksi diam-diam.
var namaHari = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var namaBulan = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// cariBulan mencocokkan token nama bulan terhadap leksikon (case-insensitive)
func cariBulan(token string) (time.Month, bool) {
	for i, nama := range namaBulan {
		if strings.EqualFold(token, nama) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

var (
	// "Senin, 1 September 2025" (koma setelah hari opsional)
	reTanggalPanjang = regexp.MustCompile(`^\s*([A-Za-z]+),?\s+(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)

	// DD/MM/YYYY atau DD-MM-YYYY, kecocokan pertama dalam teks yang dipakai
	reTanggalPendek = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

// FormatTanggal merender tanggal ke bentuk panjang yang disimpan di sheet,
// contoh: "Senin, 1 September 2025".
func FormatTanggal(t time.Time) string {
	t = t.In(Location())
	return fmt.Sprintf("%s, %d %s %d",
		namaHari[int(t.Weekday())], t.Day(), namaBulan[int(t.Month())-1], t.Year())
}

// ParseTanggalLapor mengurai tanggal bentuk panjang dari kolom TANGGAL.
// Token hari atau bulan di luar leksikon membuat hasil tidak valid (ok=false);
// pemanggil wajib mengecualikan record semacam itu dari semua jendela periode.
func ParseTanggalLapor(s string) (time.Time, bool) {
	m := reTanggalPanjang.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	hariDikenal := false
	for _, h := range namaHari {
		if strings.EqualFold(m[1], h) {
			hariDikenal = true
			break
		}
	}
	if !hariDikenal {
		return time.Time{}, false
	}

	bulan, ok := cariBulan(m[3])
	if !ok {
		return time.Time{}, false
	}

	hari, _ := strconv.Atoi(m[2])
	tahun, _ := strconv.Atoi(m[4])
	if hari < 1 || hari > 31 {
		return time.Time{}, false
	}

	return time.Date(tahun, bulan, hari, 0, 0, 0, 0, Location()), true
}

// ParseTanggalInput mengurai tanggal anchor dari argumen perintah
// (DD/MM/YYYY atau DD-MM-YYYY). ok=false berarti tidak ada anchor di teks;
// pemanggil jatuh ke "sekarang".
func ParseTanggalInput(s string) (time.Time, bool) {
	m := reTanggalPendek.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	hari, _ := strconv.Atoi(m[1])
	bulan, _ := strconv.Atoi(m[2])
	tahun, _ := strconv.Atoi(m[3])
	if bulan < 1 || bulan > 12 || hari < 1 || hari > 31 {
		return time.Time{}, false
	}

	return time.Date(tahun, time.Month(bulan), hari, 0, 0, 0, 0, Location()), true
}
