package parser

import (
	"regexp"
	"strings"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

// Extract mengubah teks laporan mentah menjadi ActivationRecord sesuai format
// hasil Classify. Tidak pernah gagal: field yang tidak ketemu bernilai string
// kosong, validasi field wajib adalah urusan pemanggil. Handle teknisi selalu
// diambil dari pengirim yang sudah diresolusi, tidak pernah dari isi teks.
func Extract(raw, submitterHandle string) models.ActivationRecord {
	record := models.ActivationRecord{
		Teknisi: strings.TrimPrefix(strings.TrimSpace(submitterHandle), "@"),
	}

	switch Classify(raw) {
	case FormatTSEL:
		extractTSEL(raw, &record)
	case FormatBGES:
		extractBGESWMS(raw, &record)
		record.Owner = models.OwnerBGES
	case FormatWMS:
		extractBGESWMS(raw, &record)
		record.Owner = models.OwnerWMS
	default:
		extractManual(raw, &record)
	}

	return record
}

// extractTSEL mengisi record dari export DIGIPOS / Telkomsel
func extractTSEL(raw string, record *models.ActivationRecord) {
	record.AO = firstCapture(raw, chainAO)

	// Export TSEL sering tidak punya field WORKORDER; nomor AO jadi pengganti
	record.Workorder = firstCapture(raw, chainWorkorder)
	if record.Workorder == "" {
		record.Workorder = record.AO
	}

	record.NoLayanan = firstCapture(raw, chainNoLayanan)
	record.NamaPelanggan = firstCapture(raw, chainNamaPelanggan)
	record.Workzone = firstCapture(raw, chainWorkzone)
	record.SNOnt = firstCapture(raw, chainSNOnt)
	record.NikOnt = firstCapture(raw, chainNikOnt)
	record.Owner = models.OwnerTSEL

	// NIK STB hanya dicari kalau ID STB memang ada; tanpa guard ini
	// identifier ONT bisa salah tertangkap sebagai STB
	record.IDStb = firstCapture(raw, chainIDStb)
	if record.IDStb != "" {
		record.NikStb = firstCapture(raw, chainNikStb)
	}
}

// extractBGESWMS mengisi record dari log provisioning BGES / WMS.
// Aturan posisi: AO, nomor layanan, dan workzone memakai kecocokan TERAKHIR;
// nama pelanggan memakai kecocokan PERTAMA. Asimetri ini perilaku hulu yang
// dipertahankan apa adanya.
func extractBGESWMS(raw string, record *models.ActivationRecord) {
	record.AO = lastCapture(raw, reAOLine)
	record.Workorder = record.AO
	record.NoLayanan = lastCapture(raw, reNoLayananToken)
	record.Workzone = lastCapture(raw, reWorkzoneLine)

	if m := reNamaLine.FindStringSubmatch(raw); m != nil {
		record.NamaPelanggan = strings.TrimSpace(m[1])
	}

	record.SNOnt = firstCapture(raw, chainSNOnt)
	record.NikOnt = firstCapture(raw, chainNikOnt)

	record.IDStb = firstCapture(raw, chainIDStb)
	if record.IDStb != "" {
		record.NikStb = firstCapture(raw, chainNikStb)
	}
}

// Label yang dikenali format manual, per field, dicoba berurutan
var manualLabels = map[string][]string{
	"ao":        {"AO", "NO AO"},
	"workorder": {"WORKORDER", "WO"},
	"layanan":   {"NO LAYANAN", "NO INET", "SERVICE NO"},
	"nama":      {"NAMA PELANGGAN", "NAMA", "CUSTOMER NAME"},
	"owner":     {"OWNER"},
	"workzone":  {"WORKZONE", "STO"},
	"snont":     {"SN ONT", "SN"},
	"nikont":    {"NIK ONT", "NIK"},
	"idstb":     {"ID STB"},
	"nikstb":    {"NIK STB"},
}

// extractManual mengisi record dari format manual "LABEL : nilai" per baris.
// Field tanpa baris label jatuh ke rantai regex bersama.
func extractManual(raw string, record *models.ActivationRecord) {
	lines := strings.Split(raw, "\n")

	ambil := func(key string, chain []*regexp.Regexp) string {
		for _, label := range manualLabels[key] {
			if v := manualValue(lines, label); v != "" {
				return v
			}
		}
		if chain != nil {
			return firstCapture(raw, chain)
		}
		return ""
	}

	record.AO = ambil("ao", chainAO)
	record.Workorder = ambil("workorder", chainWorkorder)
	record.NoLayanan = ambil("layanan", chainNoLayanan)
	record.NamaPelanggan = ambil("nama", chainNamaPelanggan)
	record.Owner = strings.ToUpper(ambil("owner", nil))
	record.Workzone = ambil("workzone", chainWorkzone)
	record.SNOnt = ambil("snont", chainSNOnt)
	record.NikOnt = ambil("nikont", chainNikOnt)

	record.IDStb = ambil("idstb", chainIDStb)
	if record.IDStb != "" {
		record.NikStb = ambil("nikstb", chainNikStb)
	}
}

// manualValue mencari baris pertama yang bentuk kapitalnya diawali
// "<LABEL> :" lalu mengambil semua teks setelah titik dua pertama.
func manualValue(lines []string, label string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)
		if !strings.HasPrefix(upper, label) {
			continue
		}

		rest := strings.TrimLeft(trimmed[len(label):], " \t")
		if !strings.HasPrefix(rest, ":") {
			continue
		}

		return strings.TrimSpace(rest[1:])
	}
	return ""
}
